package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/glyphgen/errors"
	gtest "github.com/forgeworks/glyphgen/internal/testing"
)

func TestLoadManifestMissingIsEmpty(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "catalog.toml"))
	require.NoError(t, err)
	assert.Empty(t, m.Categories)
	assert.Empty(t, m.RequiresTool)
}

func TestLoadManifest(t *testing.T) {
	b := gtest.NewCatalog(t).AddManifest(`
requires_tool = ">= 0.1.0"
categories = ["action", "toggle"]

[rename]
"content/delete" = "DeleteContent"
`)

	m, err := LoadManifest(filepath.Join(b.Root(), ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t, ">= 0.1.0", m.RequiresTool)
	assert.Equal(t, []string{"action", "toggle"}, m.Categories)
	assert.Equal(t, "DeleteContent", m.Rename["content/delete"])
}

func TestLoadManifestMalformed(t *testing.T) {
	b := gtest.NewCatalog(t).AddManifest(`categories = [`)

	_, err := LoadManifest(filepath.Join(b.Root(), ManifestFileName))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCatalogUnavailable))
}

func TestManifestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/cat", "catalog.toml"), ManifestPath("/cat", ""))
	assert.Equal(t, filepath.Join("/cat", "meta", "icons.toml"), ManifestPath("/cat", "meta/icons.toml"))
	assert.Equal(t, "/abs/icons.toml", ManifestPath("/cat", "/abs/icons.toml"))
}
