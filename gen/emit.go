package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forgeworks/glyphgen/catalog"
	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// Header marks generated output per the Go convention recognized by tooling.
const Header = "// Code generated by glyphgen. DO NOT EDIT."

// Options configures table emission.
type Options struct {
	// Package is the package clause of the generated file
	Package string
}

// Emit renders the icon table for a scanned catalog. Output is a pure
// function of the catalog: entries appear in the catalog's identifier order
// and all numeric formatting is fixed, so the same catalog yields
// byte-identical output on every run.
func Emit(cat *catalog.Catalog, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, errors.New("emit: package name required")
	}
	if cat.Len() == 0 {
		return nil, errors.NewCatalogError("catalog is empty, refusing to emit an empty table")
	}

	log := logger.ComponentLogger("gen.emit")

	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)

	b.WriteString(`// Icon is one entry of the generated table: a square vector design of the
// given nominal size composed of filled shapes.
type Icon struct {
	Name   string
	Size   int
	Shapes []Shape
}

// Shape is a filled element of an icon. R > 0 means a circle centered at
// (CX, CY); otherwise PathData holds SVG path commands.
type Shape struct {
	CX, CY, R float64
	PathData  string
}

`)

	for _, icon := range cat.Icons {
		shapes, err := ParseSVG(icon.Path, icon.Size)
		if err != nil {
			return nil, err
		}

		ident := icon.Ident()
		fmt.Fprintf(&b, "// %s is the %q icon from the %s category.\n", ident, icon.Prefix, icon.Category)
		fmt.Fprintf(&b, "var %s = Icon{Name: %q, Size: %d, Shapes: []Shape{\n", ident, icon.Prefix, icon.Size)
		for _, shape := range shapes {
			b.WriteString("\t")
			b.WriteString(shapeLiteral(shape))
			b.WriteString(",\n")
		}
		b.WriteString("}}\n\n")

		log.Debugw("emitted icon",
			logger.FieldFile, icon.Path,
			logger.FieldCount, len(shapes))
	}

	b.WriteString("// All maps identifiers to every icon in the table.\n")
	b.WriteString("var All = map[string]Icon{\n")
	for _, icon := range cat.Icons {
		fmt.Fprintf(&b, "\t%q: %s,\n", icon.Ident(), icon.Ident())
	}
	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// shapeLiteral renders one Shape composite literal with stable formatting.
func shapeLiteral(s Shape) string {
	if s.R > 0 {
		return fmt.Sprintf("{CX: %s, CY: %s, R: %s}",
			formatFloat(s.CX), formatFloat(s.CY), formatFloat(s.R))
	}
	return fmt.Sprintf("{PathData: %q}", s.PathData)
}

// formatFloat renders coordinates with the shortest exact representation,
// which is stable across runs and platforms.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
