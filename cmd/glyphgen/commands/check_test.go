package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/glyphgen/config"
	gtest "github.com/forgeworks/glyphgen/internal/testing"
)

func newCheckTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetContext(context.Background())
	return cmd
}

func checkTestConfig(t *testing.T) (*gtest.CatalogBuilder, *config.Config) {
	t.Helper()
	b := gtest.NewCatalog(t)
	cfg := config.Default()
	cfg.Catalog.Source = b.Root()
	cfg.Catalog.Categories = []string{"action"}
	cfg.Project.Root = gtest.NewConsumingProject(t, "example.com/consumer")
	return b, cfg
}

// isolateTempDir points temp-dir allocation at a private directory so leaked
// workspaces are observable without interference from other tests.
func isolateTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	return dir
}

func leakedWorkspaces(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "glyphgen-*"))
	require.NoError(t, err)
	return matches
}

func TestRunCheckCleansWorkspaceWhenStale(t *testing.T) {
	b, cfg := checkTestConfig(t)
	b.AddIcon("action", "home", 24)
	tmp := isolateTempDir(t)

	// No table installed yet: the stale exit path must still clean up
	code, err := runCheck(newCheckTestCommand(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	assert.Empty(t, leakedWorkspaces(t, tmp))
}

func TestRunCheckCleansWorkspaceOnError(t *testing.T) {
	_, cfg := checkTestConfig(t)
	cfg.Catalog.Source = filepath.Join(t.TempDir(), "missing")
	tmp := isolateTempDir(t)

	code, err := runCheck(newCheckTestCommand(t), cfg)
	require.Error(t, err)
	assert.Equal(t, 2, code)

	assert.Empty(t, leakedWorkspaces(t, tmp))
}

func TestRunCheckKeepsConfiguredWorkspace(t *testing.T) {
	b, cfg := checkTestConfig(t)
	b.AddIcon("action", "home", 24)
	cfg.Workspace.Dir = filepath.Join(t.TempDir(), "ws")

	code, err := runCheck(newCheckTestCommand(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	// An explicitly configured workspace is the caller's to manage
	_, statErr := os.Stat(cfg.Workspace.Dir)
	assert.NoError(t, statErr)
}
