package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
)

// stdoutIsTerminal reports whether w is an interactive terminal.
// Replaced in tests.
var stdoutIsTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// stdinIsTerminal reports whether standard input is interactive.
// Replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// outputFormat returns the format flag value, or the configured default.
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil && s.Output.Format != "" {
			return s.Output.Format
		}
	}
	return domain.DefaultSettings().Output.Format
}

// printContacts renders contacts in format to the command output.
func printContacts(cmd *cobra.Command, contacts domain.Collection, format string) error {
	if err := requireDispatcher(); err != nil {
		return err
	}

	info, err := dispatcher.Describe(format)
	if err != nil {
		return err
	}

	if len(contacts) == 0 && strings.HasPrefix(info.MediaType, "text/plain") {
		cmd.Println("No contacts found.")
		return nil
	}

	data, err := dispatcher.Render(contacts, info.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if isBinary(data) && stdoutIsTerminal(out) {
		return fmt.Errorf("refusing to write %s output to a terminal; redirect it to a file", info.ID)
	}
	_, err = out.Write(data)
	return err
}

func isBinary(data []byte) bool {
	return !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0
}

// joinQuery joins positional arguments into one query so that
// `contacts search name:jo* email:*` needs no quoting.
func joinQuery(args []string) string {
	return strings.Join(args, " ")
}
