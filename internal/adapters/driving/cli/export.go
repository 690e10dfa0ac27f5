package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

var (
	exportFormats  string
	exportDest     string
	exportCompress string
	exportName     string
)

var exportCmd = &cobra.Command{
	Use:   "export [query]",
	Short: "Export contacts to files or S3",
	Long: `Export the contacts matching the query (all contacts by default) once per
format. Each payload is written as <name><extension>, for example
address_book.txt and address_book.html.

The destination is a directory or an s3://bucket/prefix URL; AWS
credentials come from the standard AWS environment and config files.
Defaults for formats, destination and compression come from the export.*
settings.`,
	Example: `  contacts export
  contacts export --format json,yaml --dest ./backup
  contacts export email:*@example.com --format html --dest s3://team-bucket/contacts --compress gzip`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormats, "format", "f", "", "formats to write (default from export.formats)")
	exportCmd.Flags().StringVarP(&exportDest, "dest", "d", "", "directory or s3://bucket/prefix (default from export.dir)")
	exportCmd.Flags().StringVar(&exportCompress, "compress", "", "none, gzip, zstd or lz4 (default from export.compression)")
	exportCmd.Flags().StringVar(&exportName, "name", "", "base name of exported files (default address_book)")
	rootCmd.AddCommand(exportCmd)
}

// exportPlan is a fully resolved export run.
type exportPlan struct {
	query       string
	formats     []string
	dest        string
	compression domain.Compression
	name        string
}

func runExport(cmd *cobra.Command, args []string) error {
	plan, err := resolveExportPlan(joinQuery(args), exportFormats, exportDest, exportCompress, exportName)
	if err != nil {
		return err
	}

	exports, err := runExportPlan(cmd, plan)
	if err != nil {
		return err
	}
	for _, e := range exports {
		cmd.Printf("Wrote %d contact(s) as %s to %s\n", e.Contacts, e.Format, e.Key)
	}
	return nil
}

// resolveExportPlan fills unset options from the export settings.
// Formats are given as a comma-separated list.
func resolveExportPlan(query, formats, dest, compress, name string) (exportPlan, error) {
	if err := requireSettings(); err != nil {
		return exportPlan{}, err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return exportPlan{}, fmt.Errorf("failed to get settings: %w", err)
	}

	plan := exportPlan{
		query:       query,
		formats:     settings.Export.Formats,
		dest:        settings.Export.Dir,
		compression: settings.Export.Compression,
		name:        name,
	}
	if list := splitFormats(formats); len(list) > 0 {
		plan.formats = list
	}
	if dest != "" {
		plan.dest = dest
	}
	if compress != "" {
		c := domain.Compression(strings.ToLower(compress))
		if !c.IsValid() {
			return exportPlan{}, fmt.Errorf("%w: invalid compression %q", domain.ErrInvalidInput, compress)
		}
		plan.compression = c
	}
	return plan, nil
}

// splitFormats parses a comma-separated format list, dropping blanks and
// repeats.
func splitFormats(value string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(value, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func runExportPlan(cmd *cobra.Command, plan exportPlan) ([]domain.Export, error) {
	if err := requireContacts(); err != nil {
		return nil, err
	}
	if sinkFactory == nil {
		return nil, errors.New("export destinations not configured")
	}
	configurer, ok := contactService.(exportConfigurer)
	if !ok {
		return nil, errors.New("contact service does not support exports")
	}

	sink, err := sinkFactory(cmd.Context(), plan.dest)
	if err != nil {
		return nil, fmt.Errorf("failed to open export destination: %w", err)
	}
	configurer.SetExportSink(sink)
	configurer.SetCompression(plan.compression)
	configurer.SetExportName(plan.name)

	exports, err := contactService.Export(cmd.Context(), plan.query, plan.formats)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}
	return exports, nil
}
