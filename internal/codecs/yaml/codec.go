// Package yaml provides the YAML contact format. It shares the JSON
// format's logical model: a sequence of mappings in fixed field order.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "yaml"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec encodes a collection as a YAML sequence.
type Codec struct{}

// New creates a new YAML codec.
func New() *Codec {
	return &Codec{}
}

// Format returns "yaml".
func (c *Codec) Format() string { return Format }

// MediaType returns the YAML MIME type.
func (c *Codec) MediaType() string { return "application/yaml" }

// FileExtension returns ".yaml".
func (c *Codec) FileExtension() string { return ".yaml" }

// Encode serialises the collection as a YAML sequence of mappings.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(wire.FromCollection(contacts)); err != nil {
		return nil, fmt.Errorf("marshalling contacts: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a single YAML document holding a sequence of contacts.
// Unknown keys, nulls and missing fields are rejected.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var records []wire.Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Collection{}, nil
		}
		return nil, &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &domain.DecodeError{
			Format: Format,
			Index:  -1,
			Err:    errors.New("expected a single YAML document"),
		}
	}

	return wire.ToCollection(Format, records)
}
