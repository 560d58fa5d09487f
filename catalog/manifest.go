package catalog

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/version"
)

// ManifestFileName is the default manifest looked up at the catalog root
const ManifestFileName = "catalog.toml"

// Manifest is the optional catalog.toml at the catalog root. It lets a
// catalog pin its own category list, rename entries that would collide, and
// refuse tools that predate its layout.
type Manifest struct {
	// RequiresTool is a semver constraint on the glyphgen version,
	// e.g. ">= 1.2.0"
	RequiresTool string `toml:"requires_tool"`

	// Categories replaces the configured category list when non-empty
	Categories []string `toml:"categories"`

	// Rename maps raw catalog names to replacement Go identifiers
	Rename map[string]string `toml:"rename"`
}

// LoadManifest reads the manifest at path. A missing file is not an error;
// the returned manifest is then empty. A manifest that names a tool version
// constraint the running build does not satisfy is a generation error.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &m, nil
	}

	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, errors.NewCatalogError("malformed manifest %s: %v", path, err)
	}

	if err := version.Satisfies(m.RequiresTool); err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}

	return &m, nil
}

// ManifestPath resolves the manifest location for a catalog root. An explicit
// relative path from config wins; otherwise the default name at the root.
func ManifestPath(root, configured string) string {
	if configured == "" {
		return filepath.Join(root, ManifestFileName)
	}
	if filepath.IsAbs(configured) {
		return configured
	}
	return filepath.Join(root, configured)
}
