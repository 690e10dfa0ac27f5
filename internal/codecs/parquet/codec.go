// Package parquet provides the columnar Parquet contact format, one row per
// contact with an optional string column per field.
package parquet

import (
	"bytes"
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/custodia-labs/contacts-cli/internal/codecs/wire"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this codec.
const Format = "parquet"

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec encodes a collection as a Parquet file.
type Codec struct {
	compression parquet.WriterOption
}

// Option configures a Codec.
type Option func(*Codec)

// WithCompression sets the page compression codec: "", "snappy", "gzip"
// or "zstd". Unknown names are ignored.
func WithCompression(name string) Option {
	return func(c *Codec) {
		switch name {
		case "snappy":
			c.compression = parquet.Compression(&parquet.Snappy)
		case "gzip":
			c.compression = parquet.Compression(&parquet.Gzip)
		case "zstd":
			c.compression = parquet.Compression(&parquet.Zstd)
		}
	}
}

// New creates a new Parquet codec.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format returns "parquet".
func (c *Codec) Format() string { return Format }

// MediaType returns the Parquet MIME type.
func (c *Codec) MediaType() string { return "application/vnd.apache.parquet" }

// FileExtension returns ".parquet".
func (c *Codec) FileExtension() string { return ".parquet" }

// Encode writes the collection as a single Parquet file.
func (c *Codec) Encode(contacts domain.Collection) ([]byte, error) {
	var buf bytes.Buffer

	var options []parquet.WriterOption
	if c.compression != nil {
		options = append(options, c.compression)
	}

	w := parquet.NewGenericWriter[wire.Record](&buf, options...)
	if _, err := w.Write(wire.FromCollection(contacts)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing parquet writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads every row of a Parquet file. A null or absent column value
// is reported as a missing field.
func (c *Codec) Decode(data []byte) (domain.Collection, error) {
	if len(data) == 0 {
		return domain.Collection{}, nil
	}

	records, err := parquet.Read[wire.Record](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &domain.DecodeError{Format: Format, Index: -1, Err: err}
	}
	return wire.ToCollection(Format, records)
}
