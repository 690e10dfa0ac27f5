package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all contacts",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "", "output format (default from output.format)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := requireContacts(); err != nil {
		return err
	}

	contacts, err := contactService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}
	return printContacts(cmd, contacts, outputFormat(listFormat))
}
