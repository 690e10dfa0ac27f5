// Package toml provides the TOML contact format: a document holding one
// [[contacts]] table per record.
package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "toml"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec encodes a collection as a TOML array of tables.
type Codec struct{}

// New creates a new TOML codec.
func New() *Codec {
	return &Codec{}
}

// Format returns "toml".
func (c *Codec) Format() string { return Format }

// MediaType returns the TOML MIME type.
func (c *Codec) MediaType() string { return "application/toml" }

// FileExtension returns ".toml".
func (c *Codec) FileExtension() string { return ".toml" }

// Encode serialises the collection.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)

	if err := enc.Encode(wire.Document{Contacts: wire.FromCollection(contacts)}); err != nil {
		return nil, fmt.Errorf("marshalling contacts: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a TOML document. Keys other than the four contact fields
// are rejected.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Collection{}, nil
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc wire.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError(err)
	}
	return wire.ToCollection(Format, doc.Contacts)
}

func decodeError(err error) error {
	derr := &domain.DecodeError{Format: Format, Index: -1, Err: err}

	var tomlErr *toml.DecodeError
	if errors.As(err, &tomlErr) {
		row, col := tomlErr.Position()
		derr.Err = fmt.Errorf("line %d column %d: %w", row, col, err)
	}
	return derr
}
