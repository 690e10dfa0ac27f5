// Package json provides the JSON contact format.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "json"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec encodes a collection as a JSON array of objects whose keys follow
// the fixed field order.
type Codec struct{}

// New creates a new JSON codec.
func New() *Codec {
	return &Codec{}
}

// Format returns "json".
func (c *Codec) Format() string { return Format }

// MediaType returns the JSON MIME type.
func (c *Codec) MediaType() string { return "application/json" }

// FileExtension returns ".json".
func (c *Codec) FileExtension() string { return ".json" }

// Encode serialises the collection as indented JSON.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	data, err := json.MarshalIndent(wire.FromCollection(contacts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling contacts: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a JSON array of contact objects.
// Unknown keys, nulls and missing fields are rejected.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Collection{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []wire.Record
	if err := dec.Decode(&records); err != nil {
		return nil, decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &domain.DecodeError{
			Format: Format,
			Index:  -1,
			Offset: dec.InputOffset(),
			Err:    errors.New("unexpected data after top-level array"),
		}
	}

	return wire.ToCollection(Format, records)
}

// decodeError converts encoding/json errors into a *domain.DecodeError,
// keeping the byte offset and field where the parser reports them.
func decodeError(err error) error {
	derr := &domain.DecodeError{Format: Format, Index: -1, Err: err}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		derr.Offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		derr.Offset = typeErr.Offset
		derr.Field = typeErr.Field
	}
	return derr
}
