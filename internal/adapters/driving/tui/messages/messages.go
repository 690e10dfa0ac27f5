// Package messages defines Bubbletea message types for the contact browser.
package messages

import (
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// ContactsLoaded carries the result of filtering the address book.
// Query is the query the result was computed for; stale results are dropped.
type ContactsLoaded struct {
	Query    string
	Contacts domain.Collection
	Total    int
	Err      error
}

// DetailRendered carries a contact rendered in a format for the detail pane.
type DetailRendered struct {
	Format string
	Body   string
	Err    error
}
