// Package text provides the plain-text contact listing.
package text

import (
	"strings"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this renderer.
const Format = "text"

// Ensure Renderer implements the interface.
var _ driven.Encoder = (*Renderer)(nil)

// Renderer writes one block per contact: a "Label: value" line per field
// in fixed order, blocks separated by a blank line. It is encode-only.
type Renderer struct{}

// New creates a new text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns "text".
func (r *Renderer) Format() string { return Format }

// MediaType returns the plain-text MIME type.
func (r *Renderer) MediaType() string { return "text/plain; charset=utf-8" }

// FileExtension returns ".txt".
func (r *Renderer) FileExtension() string { return ".txt" }

// Encode renders the collection. An empty collection renders as no output.
func (r *Renderer) Encode(contacts domain.Collection) ([]byte, error) {
	var b strings.Builder
	fields := domain.Fields()

	for i, c := range contacts {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, f := range fields {
			b.WriteString(f.Label())
			b.WriteString(": ")
			b.WriteString(singleLine(c.Get(f)))
			b.WriteByte('\n')
		}
	}
	return []byte(b.String()), nil
}

// singleLine keeps multi-line values from breaking the block layout.
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
