package mcp

import (
	"context"

	"github.com/custodia-labs/contacts-cli/internal/codecs"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/services"
)

// mockContactService is a mock implementation of driving.ContactService.
// Search and List return contacts unless err is set; Add records its input.
type mockContactService struct {
	contacts  domain.Collection
	err       error
	lastQuery string
	added     []domain.Contact
}

func (m *mockContactService) Add(_ context.Context, c domain.Contact) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, c)
	return nil
}

func (m *mockContactService) List(_ context.Context) (domain.Collection, error) {
	return m.contacts, m.err
}

func (m *mockContactService) Search(_ context.Context, query string) (domain.Collection, error) {
	m.lastQuery = query
	return m.contacts, m.err
}

func (m *mockContactService) Update(_ context.Context, _ string, _ map[domain.Field]string) (domain.Contact, error) {
	return domain.Contact{}, m.err
}

func (m *mockContactService) Remove(_ context.Context, _ string) (int, error) {
	return 0, m.err
}

func (m *mockContactService) Import(_ context.Context, _ []byte, _ string) (domain.ImportResult, error) {
	return domain.ImportResult{}, m.err
}

func (m *mockContactService) Export(_ context.Context, _ string, _ []string) ([]domain.Export, error) {
	return nil, m.err
}

func testContacts() domain.Collection {
	return domain.Collection{
		{Name: "John Smith", Email: "john@example.com", Phone: "0447784777", Address: "22 Dorcas Street"},
		{Name: "Ryan Anderson", Email: "ryan@example.com"},
	}
}

func newTestServer(t interface{ Fatalf(string, ...any) }, contacts *mockContactService) *Server {
	server, err := NewServer(&Ports{
		Contacts:   contacts,
		Dispatcher: services.NewDispatcher(codecs.NewDefaultRegistry()),
	})
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	return server
}
