package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeframework/forge/internal/testutil"
)

func TestConfigInit_WritesDefaultFile(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	path := filepath.Join(tmpDir, "config.yaml")
	t.Setenv("FORGE_CONFIG", path)

	cmd := NewConfigCmd()
	cmd.SetArgs([]string{"init"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "elixirVersion:")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	path := testutil.WriteFile(t, tmpDir, "config.yaml", "elixirVersion: 1.15.7\n")
	t.Setenv("FORGE_CONFIG", path)

	cmd := NewConfigCmd()
	cmd.SetArgs([]string{"init"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The original file is untouched.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "elixirVersion: 1.15.7\n", string(data))
}

func TestConfigInit_ForceOverwrites(t *testing.T) {
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	path := testutil.WriteFile(t, tmpDir, "config.yaml", "elixirVersion: 1.15.7\n")
	t.Setenv("FORGE_CONFIG", path)

	cmd := NewConfigCmd()
	cmd.SetArgs([]string{"init", "--force"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}
