// Package cli renders store snapshots as framed, colored text for
// non-interactive output.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/ui"
)

// titles wider than this many cells are cut and end in "..."
const maxTitleWidth = 80

// Options tune output behavior from command flags.
type Options struct {
	Group bool // list grouped by pending/completed
}

// TodoLines builds the panel body for a todo snapshot.
func TodoLines(todos, completed []model.Todo, opt Options) []string {
	t := ui.Current()
	d, p := len(completed), len(todos)-len(completed)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(todos),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)), ""}
	if opt.Group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos, true)...)
	}
	return lines
}

// WriteTodos prints a todo snapshot inside a panel.
func WriteTodos(w io.Writer, todos, completed []model.Todo, opt Options) {
	ui.FPanel(w, TodoLines(todos, completed, opt))
}

// WriteUsers prints a user snapshot inside a panel.
func WriteUsers(w io.Writer, users []model.User) {
	t := ui.Current()
	lines := []string{fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Users"), ui.C(t.Accent, "Total"), len(users)), ""}
	if len(users) == 0 {
		lines = append(lines, ui.C(t.Muted, "no users"))
	}
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			ui.C(t.Muted, fmt.Sprintf("%3s", u.ID)), u.Name, ui.C(t.Accent, "<"+u.Email+">")))
	}
	ui.FPanel(w, lines)
}

// numbered lines carry the zero-based index `todo --rm` takes
func flatLines(todos []model.Todo, numbered bool) []string {
	t := ui.Current()
	if len(todos) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(todos))
	for i, it := range todos {
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		line := ui.C(color, box) + " " + ansi.Truncate(it.Title, maxTitleWidth, "...")
		if numbered {
			line = ui.C(t.Muted, fmt.Sprintf("%2d.", i)) + " " + line
		}
		out = append(out, line)
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	t := ui.Current()
	var pend, done []model.Todo
	for _, it := range todos {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	section := func(name string, items []model.Todo) []string {
		out := []string{ui.C(t.Accent, name)}
		if len(items) == 0 {
			return append(out, ui.C(t.Muted, "(none)"))
		}
		return append(out, flatLines(items, false)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Completed", done)...)
}
