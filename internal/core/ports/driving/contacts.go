package driving

import (
	"context"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// ContactService manages the address book.
type ContactService interface {
	// Add stores a new contact. A contact needs a name; exact duplicates
	// are rejected with domain.ErrAlreadyExists.
	Add(ctx context.Context, contact domain.Contact) error

	// List returns every contact in insertion order.
	List(ctx context.Context) (domain.Collection, error)

	// Search returns the contacts matching a query.
	Search(ctx context.Context, query string) (domain.Collection, error)

	// Update applies field changes to the single contact matching query.
	// Returns domain.ErrNotFound or domain.ErrAmbiguous otherwise.
	Update(ctx context.Context, query string, changes map[domain.Field]string) (domain.Contact, error)

	// Remove deletes every contact matching a non-empty query and returns
	// how many were removed.
	Remove(ctx context.Context, query string) (int, error)

	// Import decodes a payload and adds its contacts, skipping duplicates.
	Import(ctx context.Context, data []byte, format string) (domain.ImportResult, error)

	// Export encodes the contacts matching query in each format and writes
	// them to the export sink.
	Export(ctx context.Context, query string, formats []string) ([]domain.Export, error)
}
