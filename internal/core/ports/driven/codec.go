package driven

import "github.com/custodia-labs/contacts-cli/internal/core/domain"

// Encoder turns a collection into bytes for one format.
// Every registered format implements Encoder. Implementations must be safe
// for concurrent use.
type Encoder interface {
	// Format returns the stable format id (e.g. "json", "html").
	Format() string

	// MediaType returns the MIME type of the encoded payload.
	MediaType() string

	// FileExtension returns the conventional file suffix, including the dot.
	FileExtension() string

	// Encode serialises the collection, preserving its order.
	Encode(contacts domain.Collection) ([]byte, error)
}

// Decoder is the optional read capability of a format.
// Renderers (human-readable output only) do not implement it.
type Decoder interface {
	// Decode parses a payload produced by the matching Encoder.
	// Malformed input or a record missing a field yields *domain.DecodeError.
	Decode(data []byte) (domain.Collection, error)
}

// Codec is a format that can both encode and decode.
type Codec interface {
	Encoder
	Decoder
}

// CodecRegistry maps format ids to encoders.
// It is the only extension point for formats: adding a format is a
// registration, never a change to the callers of Lookup.
type CodecRegistry interface {
	// Register adds a format. A second registration of the same id fails
	// with *domain.DuplicateFormatError.
	Register(format string, enc Encoder) error

	// Lookup returns the encoder for a format id, or *domain.UnknownFormatError.
	Lookup(format string) (Encoder, error)

	// Formats returns the registered ids in registration order.
	Formats() []string
}
