package driven

import (
	"context"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// ContactStore persists the address book.
// Contacts are identified by their full field tuple; stores keep
// insertion order and reject exact duplicates with domain.ErrAlreadyExists.
type ContactStore interface {
	// List returns every contact in insertion order.
	List(ctx context.Context) (domain.Collection, error)

	// Add appends a contact.
	Add(ctx context.Context, contact domain.Contact) error

	// Replace swaps old for updated, keeping its position.
	// Returns domain.ErrNotFound if old is not stored.
	Replace(ctx context.Context, old, updated domain.Contact) error

	// Delete removes a contact.
	// Returns domain.ErrNotFound if it is not stored.
	Delete(ctx context.Context, contact domain.Contact) error

	// Close releases resources held by the store.
	Close() error
}
