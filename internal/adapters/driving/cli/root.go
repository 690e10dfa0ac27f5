// Package cli provides the contacts command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contacts-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services wired by main.
var (
	contactService  driving.ContactService
	dispatcher      driving.Dispatcher
	settingsService driving.SettingsService
	sinkFactory     SinkFactory
	dataDir         string
)

// SinkFactory resolves an export destination, a directory or an
// s3://bucket/prefix URL, to a sink. An empty destination selects the
// default export directory.
type SinkFactory func(ctx context.Context, dest string) (driven.ExportSink, error)

// exportConfigurer is implemented by contact services whose export
// destination and compression can be chosen per run.
type exportConfigurer interface {
	SetExportSink(sink driven.ExportSink)
	SetCompression(c domain.Compression)
	SetExportName(name string)
}

// Services holds everything the commands need.
type Services struct {
	Contacts   driving.ContactService
	Dispatcher driving.Dispatcher
	Settings   driving.SettingsService
	Sinks      SinkFactory

	// DataDir is the storage directory watched by `contacts watch`.
	// Empty when contacts are not persisted on disk.
	DataDir string
}

var rootCmd = &cobra.Command{
	Use:   "contacts",
	Short: "A command line address book",
	Long: `contacts keeps an address book of names, emails, phone numbers and addresses.

Contacts are selected with field:pattern queries. Patterns are
case-insensitive and may use * as a wildcard; several clauses must all match:

  contacts search name:jo* email:*@example.com

The address book can be printed, imported and exported in any registered
format (see 'contacts formats').`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	contactService = s.Contacts
	dispatcher = s.Dispatcher
	settingsService = s.Settings
	sinkFactory = s.Sinks
	dataDir = s.DataDir
}

// SetVersion sets the version reported by `contacts version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func requireContacts() error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}
	return nil
}

func requireDispatcher() error {
	if dispatcher == nil {
		return errors.New("dispatcher not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}
