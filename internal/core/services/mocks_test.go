package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// mockSink records export writes in memory.
type mockSink struct {
	mu      sync.Mutex
	written map[string]driven.ExportRequest
	count   int
	failOn  string
}

func newMockSink() *mockSink {
	return &mockSink{written: make(map[string]driven.ExportRequest)}
}

func (m *mockSink) Write(ctx context.Context, req driven.ExportRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.failOn != "" && req.Key == m.failOn {
		return "", errors.New("sink unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.written[req.Key] = req
	m.count++
	return "mock://" + req.Key, nil
}

func (m *mockSink) get(key string) (driven.ExportRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.written[key]
	return req, ok
}

func (m *mockSink) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// failingStore returns err from every operation.
type failingStore struct {
	err error
}

func (f *failingStore) List(context.Context) (domain.Collection, error) { return nil, f.err }
func (f *failingStore) Add(context.Context, domain.Contact) error { return f.err }
func (f *failingStore) Replace(context.Context, domain.Contact, domain.Contact) error { return f.err }
func (f *failingStore) Delete(context.Context, domain.Contact) error { return f.err }
func (f *failingStore) Close() error { return nil }

// upperCodec is a test-only format used to prove the dispatcher has no
// per-format knowledge.
type upperCodec struct{}

func (upperCodec) Format() string { return "upper" }
func (upperCodec) MediaType() string { return "text/x-upper" }
func (upperCodec) FileExtension() string { return ".up" }

func (upperCodec) Encode(contacts domain.Collection) ([]byte, error) {
	var out []byte
	for _, c := range contacts {
		out = append(out, []byte(c.Name+"\n")...)
	}
	return out, nil
}

func (upperCodec) Decode(data []byte) (domain.Collection, error) {
	out := domain.Collection{}
	start := 0
	for i, b := range data {
		if b == '\n' {
			out = append(out, domain.Contact{Name: string(data[start:i])})
			start = i + 1
		}
	}
	return out, nil
}
