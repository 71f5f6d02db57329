package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/store/userstore"
)

type userItem struct{ user model.User }

func (i userItem) Title() string       { return i.user.Name }
func (i userItem) Description() string { return i.user.Email }
func (i userItem) FilterValue() string { return i.user.Name + " " + i.user.Email }

type userDelegate struct{}

func (d userDelegate) Height() int                               { return 1 }
func (d userDelegate) Spacing() int                              { return 0 }
func (d userDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d userDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(userItem)
	if !ok {
		return
	}
	fmt.Fprintf(w, "%s%s %s %s",
		cursor(index == m.Index()),
		mutedStyle.Render(fmt.Sprintf("%3s", it.user.ID)),
		it.user.Name,
		accentStyle.Render("<"+it.user.Email+">"))
}

var refreshKey = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))

// fetchDoneMsg carries the outcome of one GetAllUsers handle.
type fetchDoneMsg struct {
	fetch *userstore.Fetch
	err   error
}

func waitFetch(f *userstore.Fetch) tea.Cmd {
	return func() tea.Msg {
		<-f.Done()
		return fetchDoneMsg{fetch: f, err: f.Err()}
	}
}

// UsersModel shows a spinner while a fetch is in flight and the store's
// users once it settles.
type UsersModel struct {
	ctx   context.Context
	store *userstore.Store
	fetch *userstore.Fetch
	err   error

	loading bool
	spin    spinner.Model
	list    list.Model

	width, height int
}

func NewUsersModel(ctx context.Context, store *userstore.Store) UsersModel {
	l := list.New(nil, userDelegate{}, 76, 20)
	l.Title = "Users"
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("user", "users")
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{refreshKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{refreshKey} }

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(pendingStyle))

	return UsersModel{ctx: ctx, store: store, loading: true, spin: sp, list: l, width: 80, height: 24}
}

// RunUsers fetches users and shows them until the user quits.
func RunUsers(ctx context.Context, store *userstore.Store, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(NewUsersModel(ctx, store), opts...).Run()
	if fm, ok := final.(UsersModel); ok && fm.loading && fm.fetch != nil {
		fm.fetch.Cancel()
	}
	return err
}

func (m *UsersModel) start() tea.Cmd {
	if m.fetch != nil {
		m.fetch.Cancel()
	}
	m.fetch = m.store.GetAllUsers(m.ctx)
	m.err = nil
	m.loading = true
	return tea.Batch(m.spin.Tick, waitFetch(m.fetch))
}

func (m *UsersModel) fill() {
	users := m.store.Users()
	items := make([]list.Item, 0, len(users))
	for _, u := range users {
		items = append(items, userItem{user: u})
	}
	m.list.SetItems(items)
}

func (m UsersModel) Init() tea.Cmd {
	// the fetch starts in Update so the handle is kept on the model
	return func() tea.Msg { return startFetchMsg{} }
}

type startFetchMsg struct{}

// Loading reports whether a fetch is in flight.
func (m UsersModel) Loading() bool { return m.loading }

func (m UsersModel) Err() error { return m.err }

func (m UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case startFetchMsg:
		cmd := m.start()
		return m, cmd

	case fetchDoneMsg:
		// a newer fetch replaced this one
		if msg.fetch != m.fetch {
			return m, nil
		}
		m.err = msg.err
		m.loading = false
		m.fill()
		return m, nil

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.Loading() {
				return m, nil
			}
			cmd := m.start()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m UsersModel) View() string {
	if m.Loading() {
		return frameStyle.Render(m.spin.View() + " fetching users...")
	}
	m.list.SetSize(m.width-4, max(m.height-4, 1))
	content := m.list.View()
	if m.err != nil {
		content += "\n" + errorStyle.Render("✖ fetch failed: "+m.err.Error()) +
			"\n" + mutedStyle.Render("showing the last good list; r to retry")
	}
	return frameStyle.Render(content)
}
