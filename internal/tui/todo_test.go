package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/store/todostore"
	"github.com/idilsaglam/demo/internal/tui"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func send(t *testing.T, m tui.TodoModel, msgs ...tea.Msg) tui.TodoModel {
	t.Helper()
	var tm tea.Model = m
	for _, msg := range msgs {
		tm, _ = tm.Update(msg)
	}
	out, ok := tm.(tui.TodoModel)
	if !ok {
		t.Fatalf("unexpected model type %T", tm)
	}
	return out
}

func typeText(s string) []tea.Msg {
	out := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		out = append(out, runes(string(r)))
	}
	return out
}

func TestTodoModel_AddThroughInput(t *testing.T) {
	s := todostore.New()
	m := tui.NewTodoModel(s)

	m = send(t, m, runes("a"))
	if !m.Adding() {
		t.Fatal("expected add mode after 'a'")
	}
	m = send(t, m, typeText("Buy milk")...)
	if got := s.NewTodo(); got != "Buy milk" {
		t.Fatalf("staged text = %q, want %q", got, "Buy milk")
	}
	m = send(t, m, enter)

	if m.Adding() {
		t.Fatal("still adding after enter")
	}
	todos := s.Todos()
	if len(todos) != 1 || todos[0] != (model.Todo{Title: "Buy milk"}) {
		t.Fatalf("todos = %+v", todos)
	}
	if s.NewTodo() != "" {
		t.Fatalf("staged text not cleared: %q", s.NewTodo())
	}
}

func TestTodoModel_EscKeepsStagedText(t *testing.T) {
	s := todostore.New()
	m := tui.NewTodoModel(s)

	m = send(t, m, runes("a"))
	m = send(t, m, typeText("half")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Adding() {
		t.Fatal("still adding after esc")
	}
	if s.Len() != 0 {
		t.Fatalf("esc added an item: %+v", s.Todos())
	}
	if s.NewTodo() != "half" {
		t.Fatalf("staged text = %q, want %q", s.NewTodo(), "half")
	}
}

func TestTodoModel_RemoveSelected(t *testing.T) {
	s := todostore.New()
	for _, title := range []string{"one", "two", "three"} {
		s.SetNewTodo(title)
		s.AddTodo()
	}
	m := tui.NewTodoModel(s)

	// cursor starts on the first item
	m = send(t, m, runes("d"))

	todos := s.Todos()
	if len(todos) != 2 || todos[0].Title != "two" || todos[1].Title != "three" {
		t.Fatalf("todos = %+v", todos)
	}
}

func TestTodoModel_RemoveOnEmptyList(t *testing.T) {
	s := todostore.New()
	m := tui.NewTodoModel(s)
	send(t, m, runes("d"))
	if s.Len() != 0 {
		t.Fatalf("todos = %+v", s.Todos())
	}
}

func TestTodoModel_CompletedViewDoesNotRemove(t *testing.T) {
	s := todostore.FromTodos([]model.Todo{{Title: "done", Completed: true}, {Title: "open"}})
	m := tui.NewTodoModel(s)

	m = send(t, m, runes("c"))
	if !m.ShowingCompleted() {
		t.Fatal("expected completed view")
	}
	m = send(t, m, runes("d"))
	if s.Len() != 2 {
		t.Fatalf("remove in completed view changed store: %+v", s.Todos())
	}
	m = send(t, m, runes("c"))
	if m.ShowingCompleted() {
		t.Fatal("expected full view after second 'c'")
	}
}

func TestTodoModel_Quit(t *testing.T) {
	m := tui.NewTodoModel(todostore.New())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
