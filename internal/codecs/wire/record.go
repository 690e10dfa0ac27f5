// Package wire defines the logical record shape shared by the structured
// codecs, so that every format maps onto the same model and round-trips
// through domain.Contact identically.
package wire

import "github.com/custodia-labs/contacts-cli/internal/core/domain"

// Record is one contact as it appears on the wire. Fields are pointers so
// that a missing key can be told apart from an empty value. Field order
// here is the canonical output order.
type Record struct {
	Name    *string `json:"name" yaml:"name" toml:"name" bson:"name" parquet:"name" cbor:"name"`
	Email   *string `json:"email" yaml:"email" toml:"email" bson:"email" parquet:"email" cbor:"email"`
	Phone   *string `json:"phone" yaml:"phone" toml:"phone" bson:"phone" parquet:"phone" cbor:"phone"`
	Address *string `json:"address" yaml:"address" toml:"address" bson:"address" parquet:"address" cbor:"address"`
}

// Document wraps records for formats whose top level must be a table or
// document rather than a list.
type Document struct {
	Contacts []Record `toml:"contacts" bson:"contacts"`
}

// FromContact converts a contact to its wire form with every field set.
func FromContact(c domain.Contact) Record {
	name, email, phone, address := c.Name, c.Email, c.Phone, c.Address
	return Record{Name: &name, Email: &email, Phone: &phone, Address: &address}
}

// FromCollection converts a collection to wire records, preserving order.
func FromCollection(contacts domain.Collection) []Record {
	out := make([]Record, len(contacts))
	for i, c := range contacts {
		out[i] = FromContact(c)
	}
	return out
}

func (r Record) value(f domain.Field) *string {
	switch f {
	case domain.FieldName:
		return r.Name
	case domain.FieldEmail:
		return r.Email
	case domain.FieldPhone:
		return r.Phone
	case domain.FieldAddress:
		return r.Address
	default:
		return nil
	}
}

// ToContact converts a wire record, failing on the first missing field.
func (r Record) ToContact() (domain.Contact, domain.Field, bool) {
	var c domain.Contact
	for _, f := range domain.Fields() {
		v := r.value(f)
		if v == nil {
			return domain.Contact{}, f, false
		}
		c = c.With(f, *v)
	}
	return c, "", true
}

// ToCollection converts decoded records to a collection. A record missing
// any field is rejected with a *domain.DecodeError naming the format, the
// record index and the field.
func ToCollection(format string, records []Record) (domain.Collection, error) {
	out := make(domain.Collection, 0, len(records))
	for i, r := range records {
		c, missing, ok := r.ToContact()
		if !ok {
			return nil, &domain.DecodeError{
				Format: format,
				Index:  i,
				Field:  missing.String(),
				Err:    errMissingField,
			}
		}
		out = append(out, c)
	}
	return out, nil
}
