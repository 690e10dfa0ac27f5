package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/logger"
)

const defaultWatchDebounce = 500 * time.Millisecond

var (
	watchFormats  string
	watchDest     string
	watchCompress string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [query]",
	Short: "Re-export whenever the address book changes",
	Long: `Export once, then keep the export up to date: every change to the
address book (from this or any other contacts process) triggers a new
export with the same options as 'contacts export'. Stop with Ctrl+C.

Requires the sqlite storage backend.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormats, "format", "f", "", "formats to write (default from export.formats)")
	watchCmd.Flags().StringVarP(&watchDest, "dest", "d", "", "directory or s3://bucket/prefix (default from export.dir)")
	watchCmd.Flags().StringVar(&watchCompress, "compress", "", "none, gzip, zstd or lz4 (default from export.compression)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", defaultWatchDebounce, "quiet period before re-exporting")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if dataDir == "" {
		return errors.New("watch requires the sqlite storage backend")
	}

	plan, err := resolveExportPlan(joinQuery(args), watchFormats, watchDest, watchCompress, "")
	if err != nil {
		return err
	}

	export := func() error {
		exports, err := runExportPlan(cmd, plan)
		if err != nil {
			return err
		}
		for _, e := range exports {
			cmd.Printf("%s  wrote %d contact(s) to %s\n", time.Now().Format(time.TimeOnly), e.Contacts, e.Key)
		}
		return nil
	}
	if err := export(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dataDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dataDir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dataDir)
	return watchLoop(ctx, watcher, watchDebounce, export, func(err error) {
		cmd.PrintErrf("export failed: %v\n", err)
	})
}

// watchLoop calls onChange once the store files have been quiet for
// debounce after a change. Export errors go to onError and do not stop the
// loop. It returns when ctx is done.
func watchLoop(
	ctx context.Context,
	watcher *fsnotify.Watcher,
	debounce time.Duration,
	onChange func() error,
	onError func(error),
) error {
	log := logger.Named("watch")

	// Timers never deliver stale values after Stop or Reset (Go 1.23+).
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isStoreChange(event) {
				continue
			}
			log.Debugw("store changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)

		case <-timer.C:
			if err := onChange(); err != nil {
				onError(err)
			}
		}
	}
}

// isStoreChange filters out events that do not change stored contacts,
// such as SQLite's shared-memory index and chmod-only events.
func isStoreChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	return !strings.HasSuffix(name, "-shm") && !strings.HasPrefix(name, ".")
}
