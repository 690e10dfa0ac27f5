package mcp

import (
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Contacts manages the address book.
	Contacts driving.ContactService

	// Dispatcher renders contacts and describes formats.
	Dispatcher driving.Dispatcher
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	if p.Dispatcher == nil {
		return ErrMissingDispatcher
	}
	return nil
}
