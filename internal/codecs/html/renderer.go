// Package html provides the HTML table rendering of the address book.
package html

import (
	"html"
	"strings"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Format is the registry id of this renderer.
const Format = "html"

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Address Book"

// Ensure Renderer implements the interface.
var _ driven.Encoder = (*Renderer)(nil)

// Renderer writes a standalone HTML document with one table row per
// contact. It is encode-only.
type Renderer struct {
	title string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// New creates a new HTML renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{title: DefaultTitle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format returns "html".
func (r *Renderer) Format() string { return Format }

// MediaType returns the HTML MIME type.
func (r *Renderer) MediaType() string { return "text/html; charset=utf-8" }

// FileExtension returns ".html".
func (r *Renderer) FileExtension() string { return ".html" }

const tableStyle = `table, th, td {border: 1px solid black; border-collapse: collapse; padding: 10px}`

// Encode renders the collection as an HTML document.
// Every field value and the title are escaped.
func (r *Renderer) Encode(contacts domain.Collection) ([]byte, error) {
	var b strings.Builder
	fields := domain.Fields()

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(r.title) + "</title>\n")
	b.WriteString("<style>" + tableStyle + "</style>\n")
	b.WriteString("</head>\n<body>\n<table>\n<tr>")
	for _, f := range fields {
		b.WriteString("<th>" + f.Label() + "</th>")
	}
	b.WriteString("</tr>\n")

	for _, c := range contacts {
		b.WriteString("<tr>")
		for _, f := range fields {
			b.WriteString("<td>" + html.EscapeString(c.Get(f)) + "</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>\n</body>\n</html>\n")
	return []byte(b.String()), nil
}
