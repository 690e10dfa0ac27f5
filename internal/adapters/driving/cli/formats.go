package cli

import (
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List registered formats",
	Long: `List the formats contacts can be printed, exported and imported in.
Renderers such as text and html can be written but not imported.`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if err := requireDispatcher(); err != nil {
		return err
	}

	cmd.Printf("%-10s %-32s %-10s %s\n", "FORMAT", "MEDIA TYPE", "EXTENSION", "IMPORT")
	for _, id := range dispatcher.Formats() {
		info, err := dispatcher.Describe(id)
		if err != nil {
			return err
		}
		importable := "no"
		if info.Decodable {
			importable = "yes"
		}
		cmd.Printf("%-10s %-32s %-10s %s\n", info.ID, info.MediaType, info.Extension, importable)
	}
	return nil
}
