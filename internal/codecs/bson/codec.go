// Package bson provides the BSON contact format: a single document whose
// "contacts" key holds an array of contact documents.
package bson

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "bson"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec encodes a collection as a BSON document.
type Codec struct{}

// New creates a new BSON codec.
func New() *Codec {
	return &Codec{}
}

// Format returns "bson".
func (c *Codec) Format() string { return Format }

// MediaType returns the BSON MIME type.
func (c *Codec) MediaType() string { return "application/bson" }

// FileExtension returns ".bson".
func (c *Codec) FileExtension() string { return ".bson" }

// Encode serialises the collection.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	data, err := bson.Marshal(wire.Document{Contacts: wire.FromCollection(contacts)})
	if err != nil {
		return nil, fmt.Errorf("marshalling contacts: %w", err)
	}
	return data, nil
}

// Decode parses a BSON document. Keys other than the four contact fields
// are rejected, as are null values.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	if len(data) == 0 {
		return domain.Collection{}, nil
	}

	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return nil, &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}
	if err := checkKeys(raw); err != nil {
		return nil, err
	}

	var doc wire.Document
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}
	return wire.ToCollection(Format, doc.Contacts)
}

var knownKeys = func() map[string]bool {
	keys := make(map[string]bool)
	for _, f := range domain.Fields() {
		keys[f.String()] = true
	}
	return keys
}()

var errUnknownKey = errors.New("unknown key")

// checkKeys walks the validated document and rejects unknown keys.
func checkKeys(raw bson.Raw) error {
	top, err := raw.Elements()
	if err != nil {
		return &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}
	for _, el := range top {
		if el.Key() != "contacts" {
			return &domain.DecodeError{Format: Format, Index: -1, Field: el.Key(), Err: errUnknownKey}
		}
	}

	val, err := raw.LookupErr("contacts")
	if err != nil {
		return nil
	}
	arr, ok := val.ArrayOK()
	if !ok {
		return nil
	}
	values, err := arr.Values()
	if err != nil {
		return &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}

	for i, v := range values {
		rec, ok := v.DocumentOK()
		if !ok {
			continue
		}
		elems, err := rec.Elements()
		if err != nil {
			return &domain.DecodeError{Format: Format, Index: i, Err: err}
		}
		for _, el := range elems {
			if !knownKeys[el.Key()] {
				return &domain.DecodeError{Format: Format, Index: i, Field: el.Key(), Err: errUnknownKey}
			}
		}
	}
	return nil
}
