package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <query>",
	Aliases: []string{"rm"},
	Short:   "Remove every contact matching a query",
	Long: `Remove every contact matching the query. Use name:* to clear the
address book. You are asked to confirm unless --yes is given; without a
terminal --yes is required.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if err := requireContacts(); err != nil {
		return err
	}
	query := joinQuery(args)

	if !removeYes {
		if !stdinIsTerminal() {
			return errors.New("refusing to remove contacts without --yes when not running interactively")
		}

		matches, err := contactService.Search(cmd.Context(), query)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			cmd.Println("No contacts found.")
			return nil
		}
		for _, c := range matches {
			cmd.Printf("  %s\n", c.Name)
		}
		cmd.Printf("Remove %d contact(s)? [y/N]: ", len(matches))

		reader := bufio.NewReader(cmd.InOrStdin())
		if !confirmed(readLine(reader)) {
			cmd.Println("Aborted.")
			return nil
		}
	}

	n, err := contactService.Remove(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("failed to remove contacts: %w", err)
	}
	cmd.Printf("Removed %d contact(s)\n", n)
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func confirmed(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
