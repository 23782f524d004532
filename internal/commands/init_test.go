package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/config"
)

func TestInitCommand_WritesConfig(t *testing.T) {
	dir := t.TempDir()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"init", dir, "--bank-name", "First National"})

	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(filepath.Join(dir, "teller.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "First National", cfg.Bank.Name)
	require.Len(t, cfg.SeedUsers, 1)
	assert.Equal(t, "John", cfg.SeedUsers[0].FirstName)
}

func TestInitCommand_DefaultBankName(t *testing.T) {
	dir := t.TempDir()

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", dir})

	require.NoError(t, cmd.Execute())

	cfg, err := config.Load(filepath.Join(dir, "teller.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Example Bank", cfg.Bank.Name)
}
