package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for address book resources.
	uriScheme = "contacts://"

	formatsURI      = uriScheme + "formats"
	bookURIPrefix   = uriScheme + "book/"
	mimeJSON        = "application/json"
	formatsResource = "formats"
)

// formatInfo is the JSON shape of one entry in contacts://formats.
type formatInfo struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
	Extension string `json:"extension"`
	Decodable bool   `json:"decodable"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         formatsURI,
		Name:        formatsResource,
		Description: "Registered contact formats with media type, extension and decode support",
		MIMEType:    mimeJSON,
	}, s.handleFormatsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: bookURIPrefix + "{format}",
		Name:        "address-book",
		Description: "The whole address book rendered in a registered format",
	}, s.handleBookResource)
}

// handleFormatsResource lists registered formats in registration order.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := make([]formatInfo, 0, len(s.ports.Dispatcher.Formats()))
	for _, id := range s.ports.Dispatcher.Formats() {
		info, err := s.ports.Dispatcher.Describe(id)
		if err != nil {
			return nil, fmt.Errorf("describing format %s: %w", id, err)
		}
		infos = append(infos, formatInfo{
			ID:        info.ID,
			MediaType: info.MediaType,
			Extension: info.Extension,
			Decodable: info.Decodable,
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling formats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// handleBookResource renders every contact in the format named by the URI.
func (s *Server) handleBookResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	format := extractFormat(req.Params.URI)
	if format == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	info, err := s.ports.Dispatcher.Describe(format)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	contacts, err := s.ports.Contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	data, err := s.ports.Dispatcher.Render(contacts, info.ID)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{bookContents(req.Params.URI, info, data)},
	}, nil
}

func bookContents(uri string, info domain.FormatInfo, data []byte) *mcp.ResourceContents {
	rc := &mcp.ResourceContents{
		URI:      uri,
		MIMEType: info.MediaType,
	}
	if encoding, text := encodePayload(data); encoding == EncodingText {
		rc.Text = text
	} else {
		rc.Blob = data
	}
	return rc
}

// extractFormat extracts the format id from contacts://book/{format}.
func extractFormat(uri string) string {
	format, ok := strings.CutPrefix(uri, bookURIPrefix)
	if !ok || strings.Contains(format, "/") {
		return ""
	}
	return format
}
