// Package tui provides an interactive contact browser for the terminal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Contacts loads and filters the address book.
	Contacts driving.ContactService

	// Dispatcher renders the selected contact.
	Dispatcher driving.Dispatcher
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	if p.Dispatcher == nil {
		return ErrMissingDispatcher
	}
	return nil
}
