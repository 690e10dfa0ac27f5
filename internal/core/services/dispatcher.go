package services

import (
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contacts-cli/internal/query"
)

// Ensure Dispatcher implements the interface.
var _ driving.Dispatcher = (*Dispatcher)(nil)

// freezer is implemented by registries that can be closed to registration.
type freezer interface {
	Freeze()
}

// Dispatcher routes filter requests to the query engine and encode/decode
// requests to the codec registered for a format id. It never inspects the
// format id itself.
type Dispatcher struct {
	registry driven.CodecRegistry
}

// NewDispatcher creates a dispatcher over a populated registry.
// Registries that support it are frozen: registration must be complete
// before the dispatcher is shared.
func NewDispatcher(registry driven.CodecRegistry) *Dispatcher {
	if f, ok := registry.(freezer); ok {
		f.Freeze()
	}
	return &Dispatcher{registry: registry}
}

// Filter parses query and returns the matching contacts in input order.
func (d *Dispatcher) Filter(contacts domain.Collection, q string) (domain.Collection, error) {
	p, err := query.Parse(q)
	if err != nil {
		return nil, err
	}
	return query.Apply(p, contacts), nil
}

// Serialize encodes contacts in the given format.
func (d *Dispatcher) Serialize(contacts domain.Collection, format string) ([]byte, error) {
	enc, err := d.registry.Lookup(format)
	if err != nil {
		return nil, err
	}
	return enc.Encode(contacts)
}

// Render encodes contacts for display.
func (d *Dispatcher) Render(contacts domain.Collection, format string) ([]byte, error) {
	return d.Serialize(contacts, format)
}

// Deserialize decodes data in the given format.
func (d *Dispatcher) Deserialize(data []byte, format string) (domain.Collection, error) {
	enc, err := d.registry.Lookup(format)
	if err != nil {
		return nil, err
	}
	dec, ok := enc.(driven.Decoder)
	if !ok {
		return nil, &domain.UnsupportedOperationError{Format: enc.Format(), Operation: "decoding"}
	}
	return dec.Decode(data)
}

// Formats returns the registered format ids in registration order.
func (d *Dispatcher) Formats() []string {
	return d.registry.Formats()
}

// CanDecode reports whether format is registered and decodable.
func (d *Dispatcher) CanDecode(format string) bool {
	enc, err := d.registry.Lookup(format)
	if err != nil {
		return false
	}
	_, ok := enc.(driven.Decoder)
	return ok
}

// Describe returns metadata for a registered format.
func (d *Dispatcher) Describe(format string) (domain.FormatInfo, error) {
	enc, err := d.registry.Lookup(format)
	if err != nil {
		return domain.FormatInfo{}, err
	}
	_, decodable := enc.(driven.Decoder)
	return domain.FormatInfo{
		ID:        enc.Format(),
		MediaType: enc.MediaType(),
		Extension: enc.FileExtension(),
		Decodable: decodable,
	}, nil
}
