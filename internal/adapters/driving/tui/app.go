package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// defaultDetailFormat is the first format shown in the detail pane.
const defaultDetailFormat = "text"

// App is the root Bubbletea model: a query input that filters the address
// book on every keystroke, the matching contacts, and an optional detail
// pane rendering the selected contact through the dispatcher.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input  *input.QueryInput
	list   *list.ContactList
	status *status.Bar

	// query is the last query sent for filtering.
	query string

	formats    []string
	formatIdx  int
	showDetail bool
	detail     string

	width  int
	height int
}

// NewApp creates the contact browser.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrMissingContactService
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		input:   input.NewQueryInput(s),
		list:    list.NewContactList(s),
		status:  status.NewBar(s, km),
		formats: ports.Dispatcher.Formats(),
		width:   80,
		height:  24,
	}
	for i, f := range a.formats {
		if f == defaultDetailFormat {
			a.formatIdx = i
		}
	}
	return a, nil
}

// WithContext sets the context used for store access.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init loads the full address book.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.input.Init(), a.load(""))
}

// load filters the address book with query in the background.
func (a *App) load(query string) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		all, err := a.ports.Contacts.List(ctx)
		if err != nil {
			return messages.ContactsLoaded{Query: query, Err: err}
		}
		matched, err := a.ports.Dispatcher.Filter(all, query)
		return messages.ContactsLoaded{
			Query:    query,
			Contacts: matched,
			Total:    len(all),
			Err:      err,
		}
	}
}

// renderDetail renders the selected contact in the current detail format.
func (a *App) renderDetail() tea.Cmd {
	c, ok := a.list.SelectedContact()
	if !ok || len(a.formats) == 0 {
		return nil
	}
	format := a.formats[a.formatIdx%len(a.formats)]

	return func() tea.Msg {
		data, err := a.ports.Dispatcher.Render(domain.Collection{c}, format)
		if err != nil {
			return messages.DetailRendered{Format: format, Err: err}
		}
		return messages.DetailRendered{Format: format, Body: printable(data)}
	}
}

// printable summarises binary payloads instead of writing them to the terminal.
func printable(data []byte) string {
	if utf8.Valid(data) && bytes.IndexByte(data, 0) < 0 {
		return string(data)
	}
	return fmt.Sprintf("(%d bytes of binary data)", len(data))
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.input.SetWidth(msg.Width)
		a.list.SetDimensions(msg.Width, max(msg.Height-8, 3))
		a.status.SetWidth(msg.Width)
		return a, nil

	case messages.ContactsLoaded:
		return a, a.handleLoaded(msg)

	case messages.DetailRendered:
		if msg.Err != nil {
			a.detail = a.styles.Error.Render(msg.Err.Error())
		} else {
			a.detail = strings.TrimRight(msg.Body, "\n")
		}
		a.status.SetMessage("format: " + msg.Format)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleLoaded(msg messages.ContactsLoaded) tea.Cmd {
	if msg.Query != a.query {
		return nil
	}
	if msg.Err != nil {
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return nil
	}

	a.list.SetContacts(msg.Contacts)
	a.status.SetCounts(len(msg.Contacts), msg.Total)
	if a.showDetail {
		a.status.SetState(status.StateDetail)
		return a.renderDetail()
	}
	a.status.SetState(status.StateReady)
	a.status.SetMessage("")
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return tea.Quit

	case keymap.Matches(k, a.keymap.Back):
		if a.showDetail {
			a.closeDetail()
			return nil
		}
		if a.input.Value() != "" {
			a.input.Reset()
			return a.requery()
		}
		return tea.Quit

	case keymap.Matches(k, a.keymap.Up), keymap.Matches(k, a.keymap.Down):
		if keymap.Matches(k, a.keymap.Up) {
			a.list.MoveUp()
		} else {
			a.list.MoveDown()
		}
		if a.showDetail {
			return a.renderDetail()
		}
		return nil

	case keymap.Matches(k, a.keymap.Detail):
		if a.showDetail {
			a.closeDetail()
			return nil
		}
		if a.list.Count() == 0 {
			return nil
		}
		a.showDetail = true
		a.status.SetState(status.StateDetail)
		return a.renderDetail()

	case keymap.Matches(k, a.keymap.NextFormat):
		if !a.showDetail || len(a.formats) == 0 {
			return nil
		}
		a.formatIdx = (a.formatIdx + 1) % len(a.formats)
		return a.renderDetail()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == a.query {
		return cmd
	}
	return tea.Batch(cmd, a.requery())
}

func (a *App) requery() tea.Cmd {
	a.query = a.input.Value()
	if a.status.State() != status.StateDetail {
		a.status.SetState(status.StateLoading)
	}
	return a.load(a.query)
}

func (a *App) closeDetail() {
	a.showDetail = false
	a.detail = ""
	a.status.SetState(status.StateReady)
	a.status.SetMessage("")
}

// View renders the browser.
func (a *App) View() string {
	sections := []string{
		a.styles.Title.Render("Contacts"),
		a.input.View(),
		a.list.View(),
	}
	if a.showDetail && a.detail != "" {
		sections = append(sections, a.styles.Detail.Width(max(a.width-4, 20)).Render(a.detail))
	}
	sections = append(sections, a.status.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Query returns the query the list currently reflects or is loading.
func (a *App) Query() string {
	return a.query
}
