// Package protobuf provides a Protocol Buffers contact format built on the
// well-known google.protobuf.ListValue type, so no generated code or
// schema file is needed to read it: each list element is a Struct with the
// four contact fields as string values.
package protobuf

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "protobuf"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

var (
	errNotStruct  = errors.New("list element is not a struct")
	errNotString  = errors.New("value is not a string")
	errUnknownKey = errors.New("unknown key")
)

// Codec encodes a collection as a serialized google.protobuf.ListValue.
type Codec struct {
	marshal   proto.MarshalOptions
	unmarshal proto.UnmarshalOptions
}

// New creates a protobuf codec with deterministic marshalling.
func New() *Codec {
	return &Codec{
		marshal: proto.MarshalOptions{Deterministic: true},
	}
}

// Format returns "protobuf".
func (c *Codec) Format() string { return Format }

// MediaType returns the protobuf MIME type.
func (c *Codec) MediaType() string { return "application/x-protobuf" }

// FileExtension returns ".pb".
func (c *Codec) FileExtension() string { return ".pb" }

// Encode serialises the collection.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, len(contacts))}
	for i, contact := range contacts {
		fields := make(map[string]*structpb.Value, len(domain.Fields()))
		for _, f := range domain.Fields() {
			fields[f.String()] = structpb.NewStringValue(contact.Get(f))
		}
		list.Values[i] = structpb.NewStructValue(&structpb.Struct{Fields: fields})
	}

	data, err := c.marshal.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshalling contacts: %w", err)
	}
	return data, nil
}

// Decode parses a serialized ListValue. Elements must be structs holding
// only the contact fields, each a string.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	var list structpb.ListValue
	if err := c.unmarshal.Unmarshal(data, &list); err != nil {
		return nil, &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}

	records := make([]wire.Record, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, &domain.DecodeError{Format: Format, Index: i, Err: errNotStruct}
		}
		rec, err := toRecord(i, s)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return wire.ToCollection(Format, records)
}

func toRecord(index int, s *structpb.Struct) (wire.Record, error) {
	var rec wire.Record
	for key, v := range s.GetFields() {
		str, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return rec, &domain.DecodeError{Format: Format, Index: index, Field: key, Err: errNotString}
		}
		value := str.StringValue

		field, ok := domain.ParseField(key)
		if !ok || field.String() != key {
			return rec, &domain.DecodeError{Format: Format, Index: index, Field: key, Err: errUnknownKey}
		}
		switch field {
		case domain.FieldName:
			rec.Name = &value
		case domain.FieldEmail:
			rec.Email = &value
		case domain.FieldPhone:
			rec.Phone = &value
		case domain.FieldAddress:
			rec.Address = &value
		}
	}
	return rec, nil
}
