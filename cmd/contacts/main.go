// Command contacts is a command line address book.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/contacts-cli/internal/adapters/driven/config/file"
	filesink "github.com/custodia-labs/contacts-cli/internal/adapters/driven/sink/file"
	s3sink "github.com/custodia-labs/contacts-cli/internal/adapters/driven/sink/s3"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/contacts-cli/internal/codecs"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contacts-cli/internal/core/services"
	"github.com/custodia-labs/contacts-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	err := run()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return err
	}

	dispatcher := services.NewDispatcher(codecs.NewDefaultRegistry())
	settingsService := services.NewSettingsService(configStore, dispatcher)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return err
	}
	if settings.Log.File != "" {
		defer logger.SetFile(settings.Log.File).Close()
	}

	var (
		store   driven.ContactStore
		dataDir string
	)
	switch settings.Storage.Backend {
	case domain.StorageMemory:
		store = memory.NewContactStore()
	default:
		sqlStore, err := sqlite.NewStore(settings.Storage.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening contact store: %v\n", err)
			return err
		}
		defer sqlStore.Close()
		store = sqlStore
		dataDir = filepath.Dir(sqlStore.Path())
	}

	contactService := services.NewContactService(store, dispatcher)
	contactService.SetCompression(settings.Export.Compression)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Contacts:   contactService,
		Dispatcher: dispatcher,
		Settings:   settingsService,
		Sinks:      openSink,
		DataDir:    dataDir,
	})
	return cli.Execute()
}

// openSink resolves an export destination. Directories default to
// ~/.contacts/exports.
func openSink(ctx context.Context, dest string) (driven.ExportSink, error) {
	if s3sink.IsURL(dest) {
		return s3sink.NewFromURL(ctx, dest)
	}
	if dest == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		dest = filepath.Join(dir, "exports")
	}
	return filesink.New(dest), nil
}
