package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFormat(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid book URI", "contacts://book/json", "json"},
		{"invalid prefix", "file://book/json", ""},
		{"nested path", "contacts://book/json/extra", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractFormat(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleFormatsResource(t *testing.T) {
	server := newTestServer(t, &mockContactService{})

	result, err := server.handleFormatsResource(context.Background(), readRequest(formatsURI))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, mimeJSON, result.Contents[0].MIMEType)

	var infos []formatInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 9)
	assert.Equal(t, "json", infos[0].ID)
	assert.True(t, infos[0].Decodable)
	assert.Equal(t, "html", infos[3].ID)
	assert.False(t, infos[3].Decodable)
	assert.Equal(t, ".html", infos[3].Extension)
}

func TestServer_handleBookResource(t *testing.T) {
	ctx := context.Background()

	t.Run("renders html", func(t *testing.T) {
		server := newTestServer(t, &mockContactService{contacts: testContacts()})

		result, err := server.handleBookResource(ctx, readRequest("contacts://book/html"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].MIMEType, "text/html")
		assert.Contains(t, result.Contents[0].Text, "<td>Ryan Anderson</td>")
	})

	t.Run("binary format uses blob", func(t *testing.T) {
		server := newTestServer(t, &mockContactService{contacts: testContacts()})

		result, err := server.handleBookResource(ctx, readRequest("contacts://book/bson"))

		require.NoError(t, err)
		assert.Empty(t, result.Contents[0].Text)
		assert.NotEmpty(t, result.Contents[0].Blob)
	})

	t.Run("unknown format is not found", func(t *testing.T) {
		server := newTestServer(t, &mockContactService{})

		_, err := server.handleBookResource(ctx, readRequest("contacts://book/xml"))

		assert.Error(t, err)
	})
}
