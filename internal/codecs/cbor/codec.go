// Package cbor provides the CBOR contact format (RFC 8949): an array of
// maps, encoded deterministically so equal collections give equal bytes.
package cbor

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "cbor"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec encodes a collection as CBOR.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New creates a CBOR codec using core deterministic encoding. Decoding
// rejects unknown keys and duplicate map keys.
func New() *Codec {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: invalid encode options: %v", err))
	}
	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: invalid decode options: %v", err))
	}
	return &Codec{enc: enc, dec: dec}
}

// Format returns "cbor".
func (c *Codec) Format() string { return Format }

// MediaType returns the CBOR MIME type.
func (c *Codec) MediaType() string { return "application/cbor" }

// FileExtension returns ".cbor".
func (c *Codec) FileExtension() string { return ".cbor" }

// Encode serialises the collection.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	data, err := c.enc.Marshal(wire.FromCollection(contacts))
	if err != nil {
		return nil, fmt.Errorf("marshalling contacts: %w", err)
	}
	return data, nil
}

// Decode parses a CBOR array of contact maps. Null values count as
// missing fields.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	if len(data) == 0 {
		return domain.Collection{}, nil
	}

	var records []wire.Record
	if err := c.dec.Unmarshal(data, &records); err != nil {
		derr := &domain.DecodeError{Format: Format, Index: -1, Err: err}
		var typeErr *cbor.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			derr.Field = typeErr.StructFieldName
		}
		return nil, derr
	}
	return wire.ToCollection(Format, records)
}
