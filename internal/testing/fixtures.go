// Package testing provides fixture builders shared by glyphgen tests.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// SVGTemplate is a minimal square production SVG with one path element.
const SVGTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"><path d="M0 0h%dv%dH0z"/></svg>`

// CircleSVGTemplate is a square production SVG containing a circle element.
const CircleSVGTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"><circle cx="12" cy="12" r="10"/></svg>`

// CatalogBuilder assembles a throwaway icon catalog on disk.
type CatalogBuilder struct {
	t    *testing.T
	root string
}

// NewCatalog creates an empty catalog under a temp directory.
// Cleanup is automatic via t.TempDir().
func NewCatalog(t *testing.T) *CatalogBuilder {
	t.Helper()
	return &CatalogBuilder{t: t, root: t.TempDir()}
}

// Root returns the catalog root directory.
func (b *CatalogBuilder) Root() string {
	return b.root
}

// AddIcon writes a production SVG for name at the given size into category.
func (b *CatalogBuilder) AddIcon(category, name string, size int) *CatalogBuilder {
	b.t.Helper()
	content := fmt.Sprintf(SVGTemplate, size, size, size, size, size, size)
	return b.AddRaw(category, fmt.Sprintf("ic_%s_%dpx.svg", name, size), content)
}

// AddCircleIcon writes a production SVG containing a circle element.
func (b *CatalogBuilder) AddCircleIcon(category, name string, size int) *CatalogBuilder {
	b.t.Helper()
	content := fmt.Sprintf(CircleSVGTemplate, size, size, size, size)
	return b.AddRaw(category, fmt.Sprintf("ic_%s_%dpx.svg", name, size), content)
}

// AddRaw writes an arbitrary file into a category's production directory.
func (b *CatalogBuilder) AddRaw(category, filename, content string) *CatalogBuilder {
	b.t.Helper()
	dir := filepath.Join(b.root, category, "svg", "production")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		b.t.Fatalf("failed to create category dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644); err != nil {
		b.t.Fatalf("failed to write %s: %v", filename, err)
	}
	return b
}

// AddManifest writes a catalog.toml at the catalog root.
func (b *CatalogBuilder) AddManifest(content string) *CatalogBuilder {
	b.t.Helper()
	if err := os.WriteFile(filepath.Join(b.root, "catalog.toml"), []byte(content), 0o644); err != nil {
		b.t.Fatalf("failed to write manifest: %v", err)
	}
	return b
}

// NewConsumingProject creates a minimal Go module that imports nothing and
// compiles on its own, for exercising the relocation and validation stages.
// Returns the project root.
func NewConsumingProject(t *testing.T, module string) string {
	t.Helper()
	root := t.TempDir()

	gomod := fmt.Sprintf("module %s\n\ngo 1.24\n", module)
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatalf("failed to write go.mod: %v", err)
	}

	return root
}

// WriteProjectFile writes a source file into the consuming project, creating
// parent directories as needed.
func WriteProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}
