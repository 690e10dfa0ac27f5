package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

var updateCmd = &cobra.Command{
	Use:   "update <query>",
	Short: "Change fields of a single contact",
	Long: `Change fields of the one contact matching the query. The query must match
exactly one contact; narrow it with more clauses otherwise.`,
	Example: `  contacts update name:john* --phone 0400000000
  contacts update "name:John Smith" --email js@example.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

func init() {
	for _, f := range domain.Fields() {
		updateCmd.Flags().String(f.String(), "", "new "+f.String())
	}
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if err := requireContacts(); err != nil {
		return err
	}

	changes := make(map[domain.Field]string)
	for _, f := range domain.Fields() {
		if !cmd.Flags().Changed(f.String()) {
			continue
		}
		v, err := cmd.Flags().GetString(f.String())
		if err != nil {
			return err
		}
		changes[f] = v
	}
	if len(changes) == 0 {
		return errors.New("nothing to update: pass at least one of --name, --email, --phone, --address")
	}

	updated, err := contactService.Update(cmd.Context(), joinQuery(args), changes)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	cmd.Printf("Updated %s\n", updated.Name)
	return nil
}
