package cli_test

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/idilsaglam/demo/internal/cli"
	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/ui"
)

func mono(t *testing.T) {
	t.Helper()
	if err := ui.SetTheme("mono"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	t.Cleanup(func() { _ = ui.SetTheme("classic") })
}

func TestTodoLines_Flat(t *testing.T) {
	mono(t)
	todos := []model.Todo{{Title: "Buy milk"}, {Title: "Eggs", Completed: true}}

	lines := cli.TodoLines(todos, todos[1:], cli.Options{})

	if !strings.Contains(lines[0], "x 1") || !strings.Contains(lines[0], "- 1") || !strings.Contains(lines[0], "Total 2") {
		t.Fatalf("header = %q", lines[0])
	}
	body := strings.Join(lines[3:], "\n")
	if !strings.Contains(body, " 0. [ ] Buy milk") || !strings.Contains(body, " 1. [x] Eggs") {
		t.Fatalf("body:\n%s", body)
	}
}

func TestTodoLines_Group(t *testing.T) {
	mono(t)
	todos := []model.Todo{{Title: "open"}}

	body := strings.Join(cli.TodoLines(todos, nil, cli.Options{Group: true})[3:], "\n")

	want := "Pending\n[ ] open\n\nCompleted\n(none)"
	if body != want {
		t.Fatalf("body:\n%s\nwant:\n%s", body, want)
	}
}

func TestTodoLines_Empty(t *testing.T) {
	mono(t)
	lines := cli.TodoLines(nil, nil, cli.Options{})
	if lines[len(lines)-1] != "no items" {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}
}

func TestWriteUsers(t *testing.T) {
	mono(t)
	var buf bytes.Buffer
	cli.WriteUsers(&buf, []model.User{{ID: "1", Name: "Ann", Email: "a@x.com"}})
	if out := buf.String(); !strings.Contains(out, "  1 Ann <a@x.com>") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestTodoLines_LongMultibyteTitle(t *testing.T) {
	mono(t)
	title := strings.Repeat("a", 76) + "é" + strings.Repeat("b", 10)

	lines := cli.TodoLines([]model.Todo{{Title: title}}, nil, cli.Options{})
	line := lines[len(lines)-1]

	if !utf8.ValidString(line) {
		t.Fatalf("line is not valid UTF-8: %q", line)
	}
	want := " 0. [ ] " + strings.Repeat("a", 76) + "é..."
	if line != want {
		t.Fatalf("line = %q, want %q", line, want)
	}
}

func TestTodoLines_ShortTitleUntouched(t *testing.T) {
	mono(t)
	title := strings.Repeat("é", 80)

	lines := cli.TodoLines([]model.Todo{{Title: title}}, nil, cli.Options{})

	if got := lines[len(lines)-1]; got != " 0. [ ] "+title {
		t.Fatalf("line = %q", got)
	}
}
