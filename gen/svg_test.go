package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/glyphgen/errors"
)

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSVGPath(t *testing.T) {
	path := writeSVG(t, `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"><path d="M0 0h24v24H0z"/></svg>`)

	shapes, err := ParseSVG(path, 24)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, "M0 0h24v24H0z", shapes[0].PathData)
	assert.Zero(t, shapes[0].R)
}

func TestParseSVGCircle(t *testing.T) {
	path := writeSVG(t, `<svg width="48" height="48"><circle cx="24" cy="24" r="10.5"/></svg>`)

	shapes, err := ParseSVG(path, 48)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, 24.0, shapes[0].CX)
	assert.Equal(t, 24.0, shapes[0].CY)
	assert.Equal(t, 10.5, shapes[0].R)
}

func TestParseSVGMixed(t *testing.T) {
	path := writeSVG(t, `<svg width="24" height="24"><circle cx="12" cy="12" r="4"/><path d="M2 2h20"/></svg>`)

	shapes, err := ParseSVG(path, 24)
	require.NoError(t, err)
	assert.Len(t, shapes, 2)
}

func TestParseSVGDocumentOrder(t *testing.T) {
	// Paint order matters: a circle layered between two paths must stay there
	path := writeSVG(t, `<svg width="24" height="24"><path d="M1 1h2"/><circle cx="12" cy="12" r="4"/><path d="M3 3h4"/></svg>`)

	shapes, err := ParseSVG(path, 24)
	require.NoError(t, err)
	require.Len(t, shapes, 3)
	assert.Equal(t, "M1 1h2", shapes[0].PathData)
	assert.Equal(t, 4.0, shapes[1].R)
	assert.Equal(t, "M3 3h4", shapes[2].PathData)
}

func TestParseSVGSizeMismatch(t *testing.T) {
	path := writeSVG(t, `<svg width="48" height="48"><path d="M0 0z"/></svg>`)

	_, err := ParseSVG(path, 24)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCatalogUnavailable))
	assert.Contains(t, err.Error(), "24px")
}

func TestParseSVGUnsupportedElement(t *testing.T) {
	path := writeSVG(t, `<svg width="24" height="24"><rect x="0" y="0" width="4" height="4"/></svg>`)

	_, err := ParseSVG(path, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<rect>")
}

func TestParseSVGEmpty(t *testing.T) {
	path := writeSVG(t, `<svg width="24" height="24"></svg>`)

	_, err := ParseSVG(path, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no shapes")
}

func TestParseSVGBadCircle(t *testing.T) {
	path := writeSVG(t, `<svg width="24" height="24"><circle cx="12" cy="12" r="0"/></svg>`)

	_, err := ParseSVG(path, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad circle r")
}

func TestParseSVGMalformed(t *testing.T) {
	path := writeSVG(t, `<svg width="24"`)

	_, err := ParseSVG(path, 24)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCatalogUnavailable))
}

func TestParseSVGMissingFile(t *testing.T) {
	_, err := ParseSVG(filepath.Join(t.TempDir(), "nope.svg"), 24)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCatalogUnavailable))
}
