package list

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

func contacts() domain.Collection {
	return domain.Collection{
		{Name: "John Smith", Email: "john@example.com"},
		{Name: "Jones Baker", Email: "jones@other.org"},
		{Name: "Ryan Anderson", Email: "ryan@example.com"},
	}
}

func TestContactList_Empty(t *testing.T) {
	l := NewContactList(nil)

	assert.Equal(t, 0, l.Count())
	assert.Contains(t, l.View(), "No contacts")
	_, ok := l.SelectedContact()
	assert.False(t, ok)
}

func TestContactList_Navigation(t *testing.T) {
	l := NewContactList(nil)
	l.SetContacts(contacts())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, l.Selected())

	c, ok := l.SelectedContact()
	require.True(t, ok)
	assert.Equal(t, "Ryan Anderson", c.Name)
}

func TestContactList_SetContactsClampsSelection(t *testing.T) {
	l := NewContactList(nil)
	l.SetContacts(contacts())
	l.MoveDown()
	l.MoveDown()

	l.SetContacts(contacts()[:1])
	assert.Equal(t, 0, l.Selected())

	l.SetContacts(domain.Collection{})
	assert.Equal(t, 0, l.Selected())
}

func TestContactList_View(t *testing.T) {
	l := NewContactList(nil)
	l.SetDimensions(120, 10)
	l.SetContacts(contacts())

	view := l.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Address")
	assert.Contains(t, lines[1], "> John Smith")
	assert.Contains(t, lines[2], "Jones Baker")
}

func TestContactList_ViewScrollsToSelection(t *testing.T) {
	l := NewContactList(nil)
	l.SetDimensions(120, 2)
	l.SetContacts(contacts())
	l.MoveDown()
	l.MoveDown()

	view := l.View()
	assert.Contains(t, view, "Ryan Anderson")
	assert.NotContains(t, view, "John Smith")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
