package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

var (
	addName    string
	addEmail   string
	addPhone   string
	addAddress string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a contact",
	Long: `Add a contact to the address book. The name may be given as an argument
or with --name. Adding an identical contact twice is an error.`,
	Example: `  contacts add "John Smith" --email john@example.com --phone 0447784777`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "contact name")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email address")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "phone number")
	addCmd.Flags().StringVar(&addAddress, "address", "", "postal address")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := requireContacts(); err != nil {
		return err
	}

	name := addName
	if len(args) == 1 {
		name = args[0]
	}

	c := domain.Contact{
		Name:    name,
		Email:   addEmail,
		Phone:   addPhone,
		Address: addAddress,
	}
	if err := contactService.Add(cmd.Context(), c); err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	cmd.Printf("Added %s\n", c.Name)
	return nil
}
