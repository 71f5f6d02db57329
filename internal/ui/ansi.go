package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

var (
	forceColor   bool
	disableColor bool

	// Stdout and Stderr are where OK, Fail and Hint print.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// SetColorForcing overrides TTY detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// isTerminal reports whether w is a character device.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// C wraps s in color when Stdout supports it.
func C(color, s string) string { return paint(Stdout, color, s) }

func paint(w io.Writer, color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTerminal(w) {
		return color + s + reset
	}
	return s
}

func OK(msg string)   { fmt.Fprintln(Stdout, paint(Stdout, current.Success, current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, paint(Stderr, current.Error, current.SymFail+" "+msg)) }

// Hint prints a dimmed follow-up line under a failure.
func Hint(msg string) { fmt.Fprintln(Stderr, paint(Stderr, dim, "Hint: "+msg)) }
