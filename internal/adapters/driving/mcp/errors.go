// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the address book. It lets AI assistants query, render and add contacts.
package mcp

import "errors"

var (
	// ErrMissingContactService is returned when the contact service is not provided.
	ErrMissingContactService = errors.New("mcp: contact service is required")

	// ErrMissingDispatcher is returned when the dispatcher is not provided.
	ErrMissingDispatcher = errors.New("mcp: dispatcher is required")
)
