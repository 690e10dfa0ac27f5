package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/adapters/driven/sink/file"
	"github.com/custodia-labs/contacts-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/contacts-cli/internal/codecs"
	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contacts-cli/internal/core/services"
)

// testEnv is the wiring installed by setupTestServices.
type testEnv struct {
	store     *memory.ContactStore
	settings  *services.SettingsService
	exportDir string
	dests     []string
}

func fixture() []domain.Contact {
	return []domain.Contact{
		{Name: "John Smith", Email: "john@example.com", Phone: "0447784777", Address: "22 Dorcas Street"},
		{Name: "Jones Baker", Email: "jones@other.org", Phone: "0400000001", Address: "1 High Street"},
		{Name: "Ryan Anderson", Email: "ryan@example.com"},
	}
}

// setupTestServices wires in-memory services seeded with the fixture and a
// file sink under a temporary directory. Everything is restored on cleanup.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:     memory.NewContactStore(fixture()...),
		exportDir: t.TempDir(),
	}
	d := services.NewDispatcher(codecs.NewDefaultRegistry())
	env.settings = services.NewSettingsService(memory.NewConfigStore(), d)

	SetServices(Services{
		Contacts:   services.NewContactService(env.store, d),
		Dispatcher: d,
		Settings:   env.settings,
		Sinks: func(_ context.Context, dest string) (driven.ExportSink, error) {
			env.dests = append(env.dests, dest)
			if dest == "" {
				dest = env.exportDir
			}
			return file.New(dest), nil
		},
	})

	origStdin, origStdout := stdinIsTerminal, stdoutIsTerminal
	stdinIsTerminal = func() bool { return false }
	stdoutIsTerminal = func(io.Writer) bool { return false }

	t.Cleanup(func() {
		SetServices(Services{})
		stdinIsTerminal, stdoutIsTerminal = origStdin, origStdout
	})
	return env
}

// resetFlags restores every flag to its default so commands can be executed
// repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}
