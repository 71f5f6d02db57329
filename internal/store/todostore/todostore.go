package todostore

import (
	"sync"

	"github.com/idilsaglam/demo/internal/model"
)

// In-memory todo state. Insertion order is display order.
// Nothing is persisted; a new Store starts empty.

// Store owns the todo list and the staged text for the next item.
type Store struct {
	mu      sync.Mutex
	todos   []model.Todo
	newTodo string
}

func New() *Store {
	return &Store{todos: []model.Todo{}}
}

// FromTodos returns a Store seeded with a copy of items.
func FromTodos(items []model.Todo) *Store {
	s := New()
	s.todos = append(s.todos, items...)
	return s
}

// Todos returns a copy of the list in display order.
func (s *Store) Todos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}

func (s *Store) NewTodo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newTodo
}

func (s *Store) SetNewTodo(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newTodo = text
}

// AddTodo appends the staged text as a new, not completed item and clears
// the staged text. Empty text is accepted.
func (s *Store) AddTodo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append(s.todos, model.Todo{Title: s.newTodo})
	s.newTodo = ""
}

// RemoveTodo drops the item at a zero-based index. Out of range is a no-op.
func (s *Store) RemoveTodo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.todos) {
		return
	}
	s.todos = append(s.todos[:index], s.todos[index+1:]...)
}

// Completed is recomputed on every call.
func (s *Store) Completed() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Todo{}
	for _, it := range s.todos {
		if it.Completed {
			out = append(out, it)
		}
	}
	return out
}

// Reset empties the list and the staged text.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = []model.Todo{}
	s.newTodo = ""
}
