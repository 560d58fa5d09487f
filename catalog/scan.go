package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// iconPattern matches production SVG file names: ic_<name>_<size>px.svg
var iconPattern = regexp.MustCompile(`^ic_(.*)_(\d+)px\.svg$`)

// ScanOptions controls a catalog scan.
type ScanOptions struct {
	// Categories to scan. A category missing on disk is an error; the
	// catalog layout is the manifest's (or config's) promise.
	Categories []string

	// Rename maps catalog names to replacement identifiers, applied before
	// uniqueness validation. Keys are either a bare name ("delete") or
	// category-qualified ("content/delete"); the qualified form wins and is
	// the one that can break a cross-category collision.
	Rename map[string]string
}

// Scan reads the catalog rooted at dir. For each name within a category the
// largest available size wins. Identifiers must be unique across the whole
// catalog after Go-name conversion and renames; any collision is a hard
// error before a single byte of output exists.
func Scan(dir string, opts ScanOptions) (*Catalog, error) {
	log := logger.ComponentLogger("catalog.scan")

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.NewCatalogError("cannot resolve catalog root %s: %v", dir, err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.NewCatalogError("catalog root %s is not a directory", root)
	}

	categories := opts.Categories
	if len(categories) == 0 {
		return nil, errors.NewCatalogError("no catalog categories configured")
	}

	cat := &Catalog{Root: root}
	byIdent := make(map[string][]Icon)

	for _, category := range categories {
		icons, skipped, err := scanCategory(root, category)
		if err != nil {
			return nil, err
		}
		cat.Skipped = append(cat.Skipped, skipped...)

		for _, icon := range icons {
			ident := icon.Ident()
			if renamed, ok := opts.Rename[icon.Prefix]; ok {
				ident = renamed
			}
			if renamed, ok := opts.Rename[icon.Category+"/"+icon.Prefix]; ok {
				ident = renamed
			}
			icon.ident = ident
			byIdent[ident] = append(byIdent[ident], icon)
		}
	}

	// Identifier collisions are a hard error, not a silent overwrite
	var collisions []string
	for ident, icons := range byIdent {
		if len(icons) > 1 {
			sources := make([]string, len(icons))
			for i, icon := range icons {
				sources[i] = fmt.Sprintf("%s/%s", icon.Category, icon.Prefix)
			}
			sort.Strings(sources)
			collisions = append(collisions, fmt.Sprintf("%s <- %s", ident, strings.Join(sources, ", ")))
		}
	}
	if len(collisions) > 0 {
		sort.Strings(collisions)
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrDuplicateIcon, "%d colliding identifier(s):\n  %s",
				len(collisions), strings.Join(collisions, "\n  ")),
			"rename one of the colliding entries in the catalog manifest")
	}

	for _, icons := range byIdent {
		cat.Icons = append(cat.Icons, icons[0])
	}
	sort.Slice(cat.Icons, func(i, j int) bool {
		return cat.Icons[i].Ident() < cat.Icons[j].Ident()
	})

	log.Debugw("scanned catalog",
		logger.FieldCatalog, root,
		logger.FieldIcons, len(cat.Icons),
		logger.FieldSkipped, len(cat.Skipped))

	return cat, nil
}

// scanCategory finds the largest icon of each name in one category.
func scanCategory(root, category string) ([]Icon, []string, error) {
	dir := filepath.Join(root, category, "svg", "production")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.NewCatalogError("cannot read category %s: %v", category, err)
	}

	var skipped []string
	best := make(map[string]Icon)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		m := iconPattern.FindStringSubmatch(name)
		if m == nil {
			// Non-square and otherwise oddly named icons are skipped, not fatal
			skipped = append(skipped, filepath.Join(category, name))
			continue
		}

		prefix := m[1]
		size, err := strconv.Atoi(m[2])
		if err != nil {
			skipped = append(skipped, filepath.Join(category, name))
			continue
		}

		if prev, ok := best[prefix]; !ok || size > prev.Size {
			best[prefix] = Icon{
				Prefix:   prefix,
				Category: category,
				Size:     size,
				Path:     filepath.Join(dir, name),
			}
		}
	}

	icons := make([]Icon, 0, len(best))
	for _, icon := range best {
		icons = append(icons, icon)
	}
	return icons, skipped, nil
}
