package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// Payload encodings reported by the render tool.
const (
	EncodingText   = "text"
	EncodingBase64 = "base64"
)

// ContactOutput is one contact in tool results.
type ContactOutput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SearchInput is the input schema for the search_contacts tool.
type SearchInput struct {
	Query string `json:"query,omitempty" jsonschema:"field:pattern clauses joined by spaces, e.g. name:jo* email:*@example.com; empty lists every contact"`
}

// SearchOutput is the output schema for the search_contacts tool.
type SearchOutput struct {
	Contacts []ContactOutput `json:"contacts"`
	Count    int             `json:"count"`
}

// RenderInput is the input schema for the render_contacts tool.
type RenderInput struct {
	Query  string `json:"query,omitempty" jsonschema:"query selecting the contacts to render; empty renders every contact"`
	Format string `json:"format" jsonschema:"registered format id, see the contacts://formats resource"`
}

// RenderOutput is the output schema for the render_contacts tool.
type RenderOutput struct {
	Format    string `json:"format"`
	MediaType string `json:"media_type"`
	Encoding  string `json:"encoding"`
	Content   string `json:"content"`
	Count     int    `json:"count"`
}

// AddInput is the input schema for the add_contact tool.
type AddInput struct {
	Name    string `json:"name" jsonschema:"contact name (required)"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// AddOutput is the output schema for the add_contact tool.
type AddOutput struct {
	Contact ContactOutput `json:"contact"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_contacts",
		Description: "Find contacts matching a field:pattern query (case-insensitive, * wildcards, clauses are ANDed)",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_contacts",
		Description: "Render matching contacts in a registered format such as json, yaml, text or html",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a contact to the address book",
	}, s.handleAdd)
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	contacts, err := s.ports.Contacts.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Contacts: make([]ContactOutput, len(contacts)),
		Count:    len(contacts),
	}
	for i, c := range contacts {
		output.Contacts[i] = toOutput(c)
	}
	return nil, output, nil
}

func (s *Server) handleRender(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	info, err := s.ports.Dispatcher.Describe(input.Format)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	contacts, err := s.ports.Contacts.Search(ctx, input.Query)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	data, err := s.ports.Dispatcher.Render(contacts, info.ID)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	encoding, content := encodePayload(data)
	return nil, RenderOutput{
		Format:    info.ID,
		MediaType: info.MediaType,
		Encoding:  encoding,
		Content:   content,
		Count:     len(contacts),
	}, nil
}

func (s *Server) handleAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddInput,
) (*mcp.CallToolResult, AddOutput, error) {
	c := domain.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.ports.Contacts.Add(ctx, c); err != nil {
		return nil, AddOutput{}, err
	}
	return nil, AddOutput{Contact: toOutput(c)}, nil
}

func toOutput(c domain.Contact) ContactOutput {
	return ContactOutput{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// encodePayload returns binary payloads (bson, parquet) as base64.
// A payload is binary if it is not UTF-8 or holds a NUL byte.
func encodePayload(data []byte) (encoding, content string) {
	if utf8.Valid(data) && bytes.IndexByte(data, 0) < 0 {
		return EncodingText, string(data)
	}
	return EncodingBase64, base64.StdEncoding.EncodeToString(data)
}
