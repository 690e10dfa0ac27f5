package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse contacts interactively",
	Long: `Launch an interactive contact browser. Type a query to filter the
address book as you type; syntax errors are shown in the status bar.

Controls:
  ↑/↓      Move selection
  Enter    Show or hide the selected contact
  Tab      Cycle the detail format
  Esc      Close details / clear query / quit
  Ctrl+C   Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !stdinIsTerminal() {
		return errors.New("the TUI needs an interactive terminal")
	}

	app, err := tui.NewApp(&tui.Ports{
		Contacts:   contactService,
		Dispatcher: dispatcher,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
