package driving

import "github.com/custodia-labs/contacts-cli/internal/core/domain"

// Dispatcher is the single entry point to the query engine and the codec
// registry. Errors from the query parser and codecs are returned as-is so
// callers can inspect them with errors.As.
type Dispatcher interface {
	// Filter returns the contacts matching the query, in input order.
	Filter(contacts domain.Collection, query string) (domain.Collection, error)

	// Serialize encodes the collection in the given format.
	Serialize(contacts domain.Collection, format string) ([]byte, error)

	// Render encodes the collection for display. It accepts any registered
	// format; it exists so call sites read as what they do.
	Render(contacts domain.Collection, format string) ([]byte, error)

	// Deserialize decodes a payload in the given format.
	Deserialize(data []byte, format string) (domain.Collection, error)

	// Formats lists registered format ids in registration order.
	Formats() []string

	// CanDecode reports whether a registered format supports Deserialize.
	CanDecode(format string) bool

	// Describe returns metadata for a registered format.
	Describe(format string) (domain.FormatInfo, error)
}
