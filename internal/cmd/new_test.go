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

// isolateConfig points config loading at an empty temp location so the
// developer's real ~/.forge/config.yaml never leaks into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	tmpDir, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	t.Setenv("FORGE_CONFIG", filepath.Join(tmpDir, "config.yaml"))
}

func TestNewNewCmd(t *testing.T) {
	cmd := NewNewCmd()

	assert.Equal(t, "new <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("app"))
	assert.NotNil(t, cmd.Flags().Lookup("module"))
	assert.NotNil(t, cmd.Flags().Lookup("graphql"))
	assert.NotNil(t, cmd.Flags().Lookup("rest"))
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestNew_RequiresArgs(t *testing.T) {
	cmd := NewNewCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestNew_GeneratesProject(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	target := filepath.Join(tmpDir, "hello_world")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "mix.exs"))
	assert.FileExists(t, filepath.Join(target, "lib", "hello_world", "schema.ex"))
	assert.NoFileExists(t, filepath.Join(target, "test", "hello_world_rest_test.exs"))
}

func TestNew_RESTWithOverrides(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	target := filepath.Join(tmpDir, "somewhere")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target, "--app", "shop", "--module", "Shop", "--rest"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "test", "shop_rest_test.exs"))
	assert.NoFileExists(t, filepath.Join(target, "lib", "shop", "schema.ex"))

	data, err := os.ReadFile(filepath.Join(target, "mix.exs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "app: :shop")
}

func TestNew_ConfigDefaultStyles(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	t.Setenv("FORGE_DEFAULT_STYLES", "rest")

	// No style flag: the configured default applies.
	target := filepath.Join(tmpDir, "hello_world")
	cmd := NewNewCmd()
	cmd.SetArgs([]string{target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "test", "hello_world_rest_test.exs"))
	assert.NoFileExists(t, filepath.Join(target, "lib", "hello_world", "schema.ex"))

	// An explicit style flag overrides the configured default.
	target = filepath.Join(tmpDir, "storefront")
	cmd = NewNewCmd()
	cmd.SetArgs([]string{target, "--graphql"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "lib", "storefront", "schema.ex"))
	assert.NoFileExists(t, filepath.Join(target, "test", "storefront_rest_test.exs"))
}

func TestNew_InvalidAppName(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	target := filepath.Join(tmpDir, "Bad-Name")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier")
	assert.NoDirExists(t, target)
}

func TestNew_ForceIntoNonEmptyDirectory(t *testing.T) {
	isolateConfig(t)
	tmpDir, cleanup := testutil.TempDir(t)
	defer cleanup()

	target := filepath.Join(tmpDir, "shop")
	testutil.WriteFile(t, target, "existing.txt", "keep me")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target, "--force"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "mix.exs"))
	assert.FileExists(t, filepath.Join(target, "existing.txt"))
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "new")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}
