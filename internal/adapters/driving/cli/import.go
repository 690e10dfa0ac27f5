package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/compression"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import contacts from a file",
	Long: `Import contacts from a file in any decodable format. The format is taken
from the file extension unless --format is given. Files ending in .gz,
.zst or .lz4 are decompressed first. Use - to read standard input.

Contacts already in the address book are skipped.`,
	Example: `  contacts import backup.json
  contacts import address_book.yaml.gz
  cat book.toml | contacts import - --format toml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "input format (default from file extension)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := requireContacts(); err != nil {
		return err
	}
	if err := requireDispatcher(); err != nil {
		return err
	}

	path := args[0]
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	kind, stripped := compression.FromPath(path)
	data, err = compression.Decompress(kind, data)
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", path, err)
	}

	format := importFormat
	if format == "" {
		format, err = formatForPath(stripped)
		if err != nil {
			return err
		}
	}

	result, err := contactService.Import(cmd.Context(), data, format)
	if err != nil {
		return err
	}

	cmd.Printf("Imported %d contact(s)", result.Added)
	if result.Skipped > 0 {
		cmd.Printf(", skipped %d already present", result.Skipped)
	}
	cmd.Println()
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		if importFormat == "" {
			return nil, errors.New("--format is required when reading standard input")
		}
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// formatForPath finds the registered format whose extension matches path.
func formatForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %s: no file extension; use --format", path)
	}

	for _, id := range dispatcher.Formats() {
		info, err := dispatcher.Describe(id)
		if err != nil {
			return "", err
		}
		if info.Extension == ext || (ext == ".yml" && info.Extension == ".yaml") {
			return info.ID, nil
		}
	}
	return "", fmt.Errorf("cannot infer format of %s: no format uses %s; use --format", path, ext)
}
