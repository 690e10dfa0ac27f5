// Package list provides the contact list component.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// ContactList displays contacts as a navigable table.
type ContactList struct {
	contacts domain.Collection
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewContactList creates an empty contact list.
func NewContactList(s *styles.Styles) *ContactList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ContactList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *ContactList) Init() tea.Cmd {
	return nil
}

// Update handles arrow key navigation.
func (l *ContactList) Update(msg tea.Msg) (*ContactList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the header row and the visible window of contacts.
func (l *ContactList) View() string {
	if len(l.contacts) == 0 {
		return l.styles.Muted.Render("No contacts")
	}

	widths := l.columnWidths()
	lines := make([]string, 0, l.height)
	lines = append(lines, l.styles.Header.Render(l.row(labels(), widths, "  ")))

	visible := l.height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.contacts))

	for i := start; i < end; i++ {
		if i == l.selected {
			lines = append(lines, l.styles.Selected.Render(l.row(l.contacts[i].Values(), widths, "> ")))
			continue
		}
		lines = append(lines, l.styles.Normal.Render(l.row(l.contacts[i].Values(), widths, "  ")))
	}
	return strings.Join(lines, "\n")
}

func labels() []string {
	fields := domain.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Label()
	}
	return out
}

// columnWidths splits the width evenly across the fixed fields.
func (l *ContactList) columnWidths() []int {
	n := len(domain.Fields())
	w := (l.width - 2 - (n - 1)) / n
	if w < 8 {
		w = 8
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = w
	}
	return widths
}

func (l *ContactList) row(values []string, widths []int, indicator string) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprintf("%-*s", widths[i], truncate(v, widths[i]))
	}
	return indicator + strings.Join(cells, " ")
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 3 || len(r) <= 3 {
		return string(r[:min(width, len(r))])
	}
	for lipgloss.Width(string(r)) > width-3 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// SetContacts replaces the contacts, keeping the selection in range.
func (l *ContactList) SetContacts(contacts domain.Collection) {
	l.contacts = contacts
	if l.selected >= len(contacts) {
		l.selected = max(len(contacts)-1, 0)
	}
}

// Contacts returns the displayed contacts.
func (l *ContactList) Contacts() domain.Collection {
	return l.contacts
}

// Selected returns the index of the selected contact.
func (l *ContactList) Selected() int {
	return l.selected
}

// SelectedContact returns the selected contact, if any.
func (l *ContactList) SelectedContact() (domain.Contact, bool) {
	if l.selected < 0 || l.selected >= len(l.contacts) {
		return domain.Contact{}, false
	}
	return l.contacts[l.selected], true
}

// MoveUp moves selection up.
func (l *ContactList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ContactList) MoveDown() {
	if l.selected < len(l.contacts)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ContactList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of contacts.
func (l *ContactList) Count() int {
	return len(l.contacts)
}
