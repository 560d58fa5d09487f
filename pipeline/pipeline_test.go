package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/errors"
	gtest "github.com/forgeworks/glyphgen/internal/testing"
	"github.com/forgeworks/glyphgen/version"
)

// testSetup builds a catalog, a consuming project, and a config pointing the
// pipeline at both.
func testSetup(t *testing.T, categories ...string) (*gtest.CatalogBuilder, *config.Config) {
	t.Helper()

	b := gtest.NewCatalog(t)
	project := gtest.NewConsumingProject(t, "example.com/consumer")

	cfg := config.Default()
	cfg.Catalog.Source = b.Root()
	cfg.Catalog.Categories = categories
	cfg.Project.Root = project
	return b, cfg
}

func newTestRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()
	return NewRunner(cfg, t.TempDir(), nil)
}

func TestRunFullPipeline(t *testing.T) {
	b, cfg := testSetup(t, "action", "toggle")
	b.AddIcon("action", "home", 24).
		AddIcon("action", "done", 48).
		AddCircleIcon("toggle", "radio_button_checked", 24)

	result := newTestRunner(t, cfg).Run(context.Background())
	require.NoError(t, result.Err())
	assert.Equal(t, StateValidated, result.State)
	assert.Equal(t, 3, result.Icons)
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Steps, 4)
	assert.Equal(t, []string{"generate", "relocate", "normalize", "validate"},
		[]string{result.Steps[0].Stage, result.Steps[1].Stage, result.Steps[2].Stage, result.Steps[3].Stage})

	installed, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)
	src := string(installed)
	assert.True(t, strings.HasPrefix(src, "// Code generated by glyphgen. DO NOT EDIT."))
	assert.Contains(t, src, "package icons")
	assert.Contains(t, src, "var Home = Icon{")
	assert.Contains(t, src, "var RadioButtonChecked = Icon{")
}

func TestRunDeterministic(t *testing.T) {
	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24).AddIcon("action", "settings", 24)

	runner := newTestRunner(t, cfg)
	require.NoError(t, runner.Run(context.Background()).Err())
	first, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)

	require.NoError(t, newTestRunner(t, cfg).Run(context.Background()).Err())
	second, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunNormalizationIsFixedPoint(t *testing.T) {
	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24)

	runner := newTestRunner(t, cfg)
	require.NoError(t, runner.Run(context.Background()).Err())
	installed, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)

	// Normalizing the already-installed file changes nothing
	require.NoError(t, runner.normalize(cfg.ArtifactDestination()))
	again, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)
	assert.Equal(t, installed, again)
}

func TestRunReplacesPriorDestinationContent(t *testing.T) {
	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24)

	// An obsolete table is already installed at the canonical location
	dest := cfg.ArtifactDestination()
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("package icons\n\nvar Obsolete = 1\n"), 0o644))

	result := newTestRunner(t, cfg).Run(context.Background())
	require.NoError(t, result.Err())

	installed, err := os.ReadFile(dest)
	require.NoError(t, err)
	src := string(installed)
	assert.NotContains(t, src, "Obsolete", "prior content must be fully discarded")
	assert.Contains(t, src, "var Home = Icon{")

	// Replacement goes through a temp file in the destination directory;
	// nothing besides the artifact itself may remain
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(dest), entries[0].Name())
}

func TestGenerateFailureLeavesDestinationUntouched(t *testing.T) {
	b, cfg := testSetup(t, "action", "content")
	// Same name in two categories collides after identifier conversion
	b.AddIcon("action", "delete", 24).AddIcon("content", "delete", 24)

	previous := []byte("package icons // hand-installed\n")
	dest := cfg.ArtifactDestination()
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, previous, 0o644))

	result := newTestRunner(t, cfg).Run(context.Background())
	require.Error(t, result.Err())
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, "generate", result.FailedStage())
	assert.True(t, errors.Is(result.Err(), errors.ErrDuplicateIcon))
	assert.Len(t, result.Steps, 1, "no stage may run after the failure")

	after, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, previous, after)
}

func TestRunMissingCategoryFails(t *testing.T) {
	b, cfg := testSetup(t, "action", "missing")
	b.AddIcon("action", "home", 24)

	result := newTestRunner(t, cfg).Run(context.Background())
	require.Error(t, result.Err())
	assert.True(t, errors.Is(result.Err(), errors.ErrCatalogUnavailable))
	assert.Equal(t, "generate", result.FailedStage())
}

func TestValidationGateCollidingSymbol(t *testing.T) {
	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24)

	// A hand-written file in the icons package already claims the identifier
	gtest.WriteProjectFile(t, cfg.Project.Root, "icons/extra.go",
		"package icons\n\nvar Home = 1\n")

	result := newTestRunner(t, cfg).Run(context.Background())
	require.Error(t, result.Err())
	assert.Equal(t, "validate", result.FailedStage())
	assert.True(t, errors.IsValidationError(result.Err()))

	// The artifact stays on disk for inspection
	_, err := os.Stat(cfg.ArtifactDestination())
	assert.NoError(t, err)
}

func TestRunManifestOverridesCategories(t *testing.T) {
	b, cfg := testSetup(t, "action", "toggle")
	b.AddIcon("action", "home", 24).
		AddIcon("toggle", "star", 24).
		AddManifest("categories = [\"action\"]\n")

	result := newTestRunner(t, cfg).Run(context.Background())
	require.NoError(t, result.Err())
	assert.Equal(t, 1, result.Icons)

	installed, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)
	assert.NotContains(t, string(installed), "var Star")
}

func TestRunManifestVersionConstraint(t *testing.T) {
	restore := version.Version
	version.Version = "1.0.0"
	t.Cleanup(func() { version.Version = restore })

	b, cfg := testSetup(t, "action")
	b.AddIcon("action", "home", 24).
		AddManifest("requires_tool = \">= 99.0.0\"\n")

	result := newTestRunner(t, cfg).Run(context.Background())
	require.Error(t, result.Err())
	assert.True(t, errors.Is(result.Err(), errors.ErrVersionConstraint))
}

func TestExternalGeneratorFailure(t *testing.T) {
	_, cfg := testSetup(t)
	cfg.Generator.Command = "false"

	result := newTestRunner(t, cfg).Run(context.Background())
	require.Error(t, result.Err())
	assert.True(t, errors.Is(result.Err(), errors.ErrGeneratorFailed))
	assert.Equal(t, "generate", result.FailedStage())
}

func TestExternalGeneratorNoArtifact(t *testing.T) {
	_, cfg := testSetup(t)
	cfg.Generator.Command = "true"

	result := newTestRunner(t, cfg).Run(context.Background())
	require.Error(t, result.Err())
	assert.True(t, errors.Is(result.Err(), errors.ErrGeneratorFailed))
	assert.Contains(t, result.Err().Error(), "produced no")
}

func TestExternalGenerator(t *testing.T) {
	_, cfg := testSetup(t)
	cfg.Generator.Command = `sh -c "printf 'package icons\n' > icons_gen.go"`

	result := newTestRunner(t, cfg).Run(context.Background())
	require.NoError(t, result.Err())
	assert.Equal(t, StateValidated, result.State)

	installed, err := os.ReadFile(cfg.ArtifactDestination())
	require.NoError(t, err)
	assert.Equal(t, "package icons\n", string(installed))
}

func TestRelocateMissingArtifact(t *testing.T) {
	_, cfg := testSetup(t)
	runner := newTestRunner(t, cfg)

	_, err := runner.relocate(filepath.Join(runner.workspace, "nope.go"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrArtifactMissing))
}

func TestNormalizeMalformedArtifact(t *testing.T) {
	_, cfg := testSetup(t)
	runner := newTestRunner(t, cfg)

	dest := filepath.Join(t.TempDir(), "broken.go")
	require.NoError(t, os.WriteFile(dest, []byte("package icons\nfunc {"), 0o644))

	err := runner.normalize(dest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNormalizeFailed))
}
