package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/store/todostore"
)

// todoItem adapts model.Todo to bubbles/list.Item
type todoItem struct{ todo model.Todo }

func (i todoItem) Title() string       { return i.todo.Title }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.todo.Title }

type todoDelegate struct{}

func (d todoDelegate) Height() int                               { return 1 }
func (d todoDelegate) Spacing() int                              { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	t := it.todo
	box, text := mutedStyle.Render(boxUnchecked), t.Title
	if t.Completed {
		box, text = successStyle.Render(boxChecked), doneStyle.Render(t.Title)
	}
	if text == "" {
		text = mutedStyle.Render("(empty)")
	}
	fmt.Fprintf(w, "%s%s %s", cursor(index == m.Index()), box, text)
}

var (
	addKey       = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	removeKey    = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	completedKey = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completed"))
)

// TodoModel is the Bubble Tea model over a todo store. The store is the
// source of truth; the list is rebuilt from it after every change.
type TodoModel struct {
	store *todostore.Store
	list  list.Model

	adding bool            // inline add is active
	ti     textinput.Model // bound to the store's staged text

	showCompleted bool // list shows the completed view instead of all items

	width, height int
}

func NewTodoModel(store *todostore.Store) TodoModel {
	l := list.New(nil, todoDelegate{}, 76, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	// list positions must match store positions for RemoveTodo
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addKey, removeKey, completedKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addKey, removeKey, completedKey} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	m := TodoModel{store: store, list: l, ti: ti, width: 80, height: 24}
	m.refresh()
	return m
}

// RunTodo starts the interactive todo list and blocks until it quits.
func RunTodo(store *todostore.Store, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(NewTodoModel(store), opts...).Run()
	return err
}

func (m *TodoModel) refresh() {
	var todos []model.Todo
	if m.showCompleted {
		todos = m.store.Completed()
	} else {
		todos = m.store.Todos()
	}
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoItem{todo: t})
	}
	m.list.SetItems(items)

	all := m.store.Todos()
	done := len(m.store.Completed())
	view := "Todos"
	if m.showCompleted {
		view = "Completed"
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render(view),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(all)-done,
		accentStyle.Render("Total"), len(all),
	)
}

func (m TodoModel) Init() tea.Cmd { return nil }

func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.adding {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				m.store.SetNewTodo(m.ti.Value())
				m.store.AddTodo()
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				m.refresh()
				m.list.Select(len(m.list.Items()) - 1)
				return m, nil
			case "esc":
				// the staged text stays in the store for the next add
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		m.store.SetNewTodo(m.ti.Value())
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.ti.SetValue(m.store.NewTodo())
			m.ti.CursorEnd()
			cmd := m.ti.Focus()
			return m, cmd
		case "d":
			if !m.showCompleted && len(m.list.Items()) > 0 {
				i := m.list.Index()
				m.store.RemoveTodo(i)
				m.refresh()
				if i >= len(m.list.Items()) && i > 0 {
					m.list.Select(i - 1)
				}
			}
			return m, nil
		case "c":
			m.showCompleted = !m.showCompleted
			m.refresh()
			m.list.Select(0)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m TodoModel) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 8
	}
	m.list.SetSize(m.width-4, max(listHeight, 1))

	content := m.list.View()
	if m.adding {
		content += "\n" + frameStyle.Render("Add new item\n"+m.ti.View())
	}
	if m.showCompleted && len(m.list.Items()) == 0 {
		content += "\n" + mutedStyle.Render("nothing completed yet")
	}
	return frameStyle.Render(content)
}

// Adding reports whether the inline add input is open.
func (m TodoModel) Adding() bool { return m.adding }

// ShowingCompleted reports whether the list shows the completed view.
func (m TodoModel) ShowingCompleted() bool { return m.showCompleted }
