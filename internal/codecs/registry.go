package codecs

import (
	"strings"
	"sync"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.CodecRegistry = (*Registry)(nil)

// Registry maps format ids to encoders.
//
// Registration is expected to finish before the registry is shared;
// Freeze marks that point. Lookups are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	encoders map[string]driven.Encoder
	order    []string
	frozen   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		encoders: make(map[string]driven.Encoder),
	}
}

// normalise canonicalises a format id for storage and lookup.
func normalise(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

// Register adds an encoder under a format id.
// Registering an id twice fails with *domain.DuplicateFormatError.
func (r *Registry) Register(format string, enc driven.Encoder) error {
	id := normalise(format)
	if id == "" || enc == nil {
		return domain.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return domain.ErrRegistryFrozen
	}
	if _, exists := r.encoders[id]; exists {
		return &domain.DuplicateFormatError{Format: id}
	}
	r.encoders[id] = enc
	r.order = append(r.order, id)
	return nil
}

// MustRegister is like Register but panics on error.
// Registration conflicts are wiring bugs, so startup code uses this.
func (r *Registry) MustRegister(format string, enc driven.Encoder) {
	if err := r.Register(format, enc); err != nil {
		panic(err)
	}
}

// Lookup returns the encoder for a format id.
func (r *Registry) Lookup(format string) (driven.Encoder, error) {
	id := normalise(format)

	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, ok := r.encoders[id]
	if !ok {
		return nil, &domain.UnknownFormatError{Format: format}
	}
	return enc, nil
}

// Has returns true if a format id is registered.
func (r *Registry) Has(format string) bool {
	_, err := r.Lookup(format)
	return err == nil
}

// Decodable returns true if the format is registered and can decode.
func (r *Registry) Decodable(format string) bool {
	enc, err := r.Lookup(format)
	if err != nil {
		return false
	}
	_, ok := enc.(driven.Decoder)
	return ok
}

// Formats returns all registered format ids in registration order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Freeze closes the registry to further registration.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen returns true once Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}
