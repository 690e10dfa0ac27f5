package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field names one of the fixed contact fields.
type Field string

// The fixed field set. Every Contact carries all of them.
const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
)

// fields is the canonical field order used by every codec and renderer.
var fields = []Field{FieldName, FieldEmail, FieldPhone, FieldAddress}

// fieldAliases maps accepted spellings onto canonical fields.
// phone_number is the key used by address books exported from older tools.
var fieldAliases = map[string]Field{
	"name":         FieldName,
	"email":        FieldEmail,
	"phone":        FieldPhone,
	"phone_number": FieldPhone,
	"address":      FieldAddress,
}

// Fields returns the fixed field set in canonical order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField resolves a field name case-insensitively.
func ParseField(s string) (Field, bool) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// Label returns the human-readable column label for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldAddress:
		return "Address"
	default:
		return string(f)
	}
}

// IsValid reports whether f is one of the fixed fields.
func (f Field) IsValid() bool {
	for _, known := range fields {
		if f == known {
			return true
		}
	}
	return false
}

// Contact is a single address book entry.
// It is a value type: updates produce a replacement via With.
// Two contacts are the same entry when every field is equal.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Get returns the value of the given field, or "" for an unknown field.
func (c Contact) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	case FieldAddress:
		return c.Address
	default:
		return ""
	}
}

// With returns a copy of c with field f set to value.
// Unknown fields leave the copy unchanged.
func (c Contact) With(f Field, value string) Contact {
	switch f {
	case FieldName:
		c.Name = value
	case FieldEmail:
		c.Email = value
	case FieldPhone:
		c.Phone = value
	case FieldAddress:
		c.Address = value
	}
	return c
}

// Values returns the field values in canonical field order.
func (c Contact) Values() []string {
	return []string{c.Name, c.Email, c.Phone, c.Address}
}

// Validate checks that c can be stored and exported: the name must not be
// blank and every value must be valid UTF-8.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	for _, f := range fields {
		if !utf8.ValidString(c.Get(f)) {
			return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidInput, f)
		}
	}
	return nil
}

// IsZero reports whether every field is empty.
func (c Contact) IsZero() bool {
	return c == Contact{}
}

// Collection is an ordered set of contacts. Order is insertion order and is
// significant for output. A Collection holds no query or format knowledge.
type Collection []Contact

// Len returns the number of contacts.
func (c Collection) Len() int {
	return len(c)
}

// Index returns the position of the first contact equal to x, or -1.
func (c Collection) Index(x Contact) int {
	for i := range c {
		if c[i] == x {
			return i
		}
	}
	return -1
}

// Contains reports whether an identical contact is present.
func (c Collection) Contains(x Contact) bool {
	return c.Index(x) >= 0
}

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
