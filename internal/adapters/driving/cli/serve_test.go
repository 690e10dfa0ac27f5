package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contacts-cli/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_RequiresServices(t *testing.T) {
	SetServices(Services{})

	_, err := execute(t, "mcp", "serve")
	assert.ErrorIs(t, err, mcp.ErrMissingContactService)
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "tui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
