// Package catalog reads icon catalogs.
//
// A catalog is a directory tree of SVG files laid out by category
// (<category>/svg/production/ic_<name>_<size>px.svg), optionally described
// by a catalog.toml manifest. The catalog is the single source of truth for
// the generated table; this package only reads it, never writes to it.
package catalog

import "sort"

// Icon is a single catalog entry: the largest production SVG found for a
// given name within a category.
type Icon struct {
	Prefix   string // raw catalog name, e.g. "3d_rotation"
	Category string // catalog category, e.g. "action"
	Size     int    // nominal pixel size of the selected SVG
	Path     string // absolute path to the SVG file

	// ident is the resolved identifier when a manifest rename applies;
	// set by Scan
	ident string
}

// Ident returns the Go identifier this icon is exported under.
func (i Icon) Ident() string {
	if i.ident != "" {
		return i.ident
	}
	return GoName(i.Prefix)
}

// Catalog is the scanned, validated icon set. Icons are sorted by identifier
// so the emitted table is deterministic.
type Catalog struct {
	Root    string   // catalog root directory
	Icons   []Icon   // unique by Ident, sorted by Ident
	Skipped []string // files that did not match the naming pattern
}

// Len reports the number of icons.
func (c *Catalog) Len() int {
	return len(c.Icons)
}

// Categories returns the distinct categories present, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	for _, icon := range c.Icons {
		seen[icon.Category] = true
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
