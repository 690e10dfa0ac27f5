package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

func TestRenderer_Metadata(t *testing.T) {
	r := New()
	assert.Equal(t, "html", r.Format())
	assert.Equal(t, ".html", r.FileExtension())
	assert.Contains(t, r.MediaType(), "text/html")
}

func TestRenderer_IsEncodeOnly(t *testing.T) {
	var enc driven.Encoder = New()
	_, ok := enc.(driven.Decoder)
	assert.False(t, ok)
}

func TestRenderer_Document(t *testing.T) {
	coll := domain.Collection{
		{Name: "Bridgette Perrers", Email: "bp@example.com", Phone: "0447784777", Address: "Southbank"},
		{Name: "Ada"},
	}

	data, err := New().Encode(coll)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Address Book</title>")
	assert.Contains(t, out, "<tr><th>Name</th><th>Email</th><th>Phone</th><th>Address</th></tr>")
	assert.Contains(t, out, "<tr><td>Bridgette Perrers</td><td>bp@example.com</td><td>0447784777</td><td>Southbank</td></tr>")
	assert.Contains(t, out, "<tr><td>Ada</td><td></td><td></td><td></td></tr>")
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
	assert.True(t, strings.HasSuffix(out, "</html>\n"))
}

func TestRenderer_EscapesFieldValues(t *testing.T) {
	coll := domain.Collection{{
		Name:    "<script>alert(1)</script>",
		Email:   `"quoted"@example.com`,
		Phone:   "O'Brien & Sons",
		Address: "a > b",
	}}

	data, err := New().Encode(coll)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&#34;quoted&#34;@example.com")
	assert.Contains(t, out, "O&#39;Brien &amp; Sons")
	assert.Contains(t, out, "a &gt; b")
}

func TestRenderer_WithTitle(t *testing.T) {
	data, err := New(WithTitle("Team <B>")).Encode(nil)
	require.NoError(t, err)

	assert.Contains(t, string(data), "<title>Team &lt;B&gt;</title>")
	assert.Equal(t, 1, strings.Count(string(data), "<tr>"))
}
