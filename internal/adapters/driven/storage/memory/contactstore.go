// Package memory provides in-memory implementations of driven port interfaces.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is an in-memory implementation of driven.ContactStore.
// Contents are lost when the process exits.
type ContactStore struct {
	mu       sync.RWMutex
	contacts domain.Collection
}

// NewContactStore creates a new in-memory contact store, optionally seeded.
// Duplicates in seed are dropped.
func NewContactStore(seed ...domain.Contact) *ContactStore {
	s := &ContactStore{contacts: make(domain.Collection, 0, len(seed))}
	for _, c := range seed {
		if !s.contacts.Contains(c) {
			s.contacts = append(s.contacts, c)
		}
	}
	return s
}

// List returns a copy of every contact in insertion order.
func (s *ContactStore) List(ctx context.Context) (domain.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts.Clone(), nil
}

// Add appends a contact.
func (s *ContactStore) Add(ctx context.Context, c domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contacts.Contains(c) {
		return domain.ErrAlreadyExists
	}
	s.contacts = append(s.contacts, c)
	return nil
}

// Replace swaps old for updated in place.
func (s *ContactStore) Replace(ctx context.Context, old, updated domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contacts.Index(old)
	if i < 0 {
		return domain.ErrNotFound
	}
	if old != updated && s.contacts.Contains(updated) {
		return domain.ErrAlreadyExists
	}
	s.contacts[i] = updated
	return nil
}

// Delete removes a contact.
func (s *ContactStore) Delete(ctx context.Context, c domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.contacts.Index(c)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	return nil
}

// Close is a no-op.
func (s *ContactStore) Close() error {
	return nil
}
