package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// visible width, ignoring color codes and counting wide runes
func width(s string) int { return lipgloss.Width(stripANSI(s)) }

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, w int) string {
	if total <= 0 {
		total = 1
	}
	if w < 5 {
		w = 5
	}
	filled := done * w / total
	if filled > w {
		filled = w
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", w-filled)
	return fmt.Sprintf("%s %3d%%", bar, done*100/total)
}

// FPanel draws lines inside a frame built from the current theme.
func FPanel(w io.Writer, lines []string) {
	t := current
	maxw := 0
	for _, ln := range lines {
		if n := width(ln); n > maxw {
			maxw = n
		}
	}
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+" "+ln+strings.Repeat(" ", maxw-width(ln))+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
