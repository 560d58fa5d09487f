// Package gen turns a scanned catalog into the generated Go icon table.
//
// The table is a single self-contained source file: it declares its own
// Icon/Shape types alongside the per-icon vars, so the consuming project
// needs nothing from glyphgen at runtime.
package gen

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/forgeworks/glyphgen/errors"
)

// Shape is one filled element of an icon. R > 0 means a circle at (CX, CY);
// otherwise PathData holds the SVG path commands.
type Shape struct {
	CX, CY, R float64
	PathData  string
}

// ParseSVG reads the catalog SVG at path and extracts its shapes in document
// order, so paint order survives into the table. The file's declared width
// and height must both equal size; a mismatch means the catalog entry's file
// name lies about its content.
func ParseSVG(path string, size int) ([]Shape, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogError("cannot read icon %s: %v", path, err)
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))

	var shapes []Shape
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewCatalogError("malformed SVG %s: %v", path, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if el.Name.Local != "svg" {
					return nil, errors.NewCatalogError("icon %s: root element is <%s>, not <svg>",
						path, el.Name.Local)
				}
				want := strconv.Itoa(size)
				w, h := attrValue(el, "width"), attrValue(el, "height")
				if w != want || h != want {
					return nil, errors.NewCatalogError("icon %s declares %sx%s, file name says %dpx",
						path, w, h, size)
				}
			case 2:
				shape, err := parseShape(path, el)
				if err != nil {
					return nil, err
				}
				shapes = append(shapes, shape)
			}
		case xml.EndElement:
			depth--
		}
	}

	if len(shapes) == 0 {
		return nil, errors.NewCatalogError("icon %s contains no shapes", path)
	}

	return shapes, nil
}

// parseShape converts one direct child of the root element into a Shape.
// Production icons only ever contain circle and path elements.
func parseShape(path string, el xml.StartElement) (Shape, error) {
	switch el.Name.Local {
	case "circle":
		cx, err := strconv.ParseFloat(attrValue(el, "cx"), 64)
		if err != nil {
			return Shape{}, errors.NewCatalogError("icon %s: bad circle cx %q", path, attrValue(el, "cx"))
		}
		cy, err := strconv.ParseFloat(attrValue(el, "cy"), 64)
		if err != nil {
			return Shape{}, errors.NewCatalogError("icon %s: bad circle cy %q", path, attrValue(el, "cy"))
		}
		r, err := strconv.ParseFloat(attrValue(el, "r"), 64)
		if err != nil || r <= 0 {
			return Shape{}, errors.NewCatalogError("icon %s: bad circle r %q", path, attrValue(el, "r"))
		}
		return Shape{CX: cx, CY: cy, R: r}, nil

	case "path":
		d := attrValue(el, "d")
		if d == "" {
			return Shape{}, errors.NewCatalogError("icon %s: path element without d attribute", path)
		}
		return Shape{PathData: d}, nil

	default:
		return Shape{}, errors.NewCatalogError("icon %s contains unsupported element <%s>",
			path, el.Name.Local)
	}
}

func attrValue(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
