package cli

import (
	"github.com/spf13/cobra"
)

var searchFormat string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find contacts matching a query",
	Long: `Find contacts whose fields match every clause of the query.

A clause is field:pattern where field is one of name, email, phone
(or phone_number) and address. Matching ignores case. Without * the
pattern must equal the whole value; * matches any run of characters:

  jo*    starts with "jo"
  *an    ends with "an"
  *an*   contains "an"`,
	Example: `  contacts search name:jo*
  contacts search name:*an* email:*@example.com
  contacts search phone:0447* --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", "", "output format (default from output.format)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireContacts(); err != nil {
		return err
	}

	// Query errors carry the offending token; return them unwrapped.
	contacts, err := contactService.Search(cmd.Context(), joinQuery(args))
	if err != nil {
		return err
	}
	return printContacts(cmd, contacts, outputFormat(searchFormat))
}
