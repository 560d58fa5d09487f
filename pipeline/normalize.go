package pipeline

import (
	"bytes"
	"os"

	"golang.org/x/tools/imports"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// normalize rewrites the installed artifact in canonical Go style (gofmt plus
// import grouping). Normalization is a fixed point: a normalized file passes
// through unchanged, so repeated runs produce no diff.
func (r *Runner) normalize(dest string) error {
	src, err := os.ReadFile(dest)
	if err != nil {
		return errors.Wrapf(errors.ErrNormalizeFailed, "read %s: %v", dest, err)
	}

	formatted, err := imports.Process(dest, src, nil)
	if err != nil {
		// The formatter's parse error is the diagnostic; keep it verbatim
		return errors.Wrapf(errors.ErrNormalizeFailed, "%s: %v", dest, err)
	}

	if bytes.Equal(src, formatted) {
		logger.ComponentLogger("pipeline.normalize").Debugw("artifact already normalized",
			logger.FieldArtifact, dest)
		return nil
	}

	if err := os.WriteFile(dest, formatted, 0o644); err != nil {
		return errors.Wrapf(errors.ErrNormalizeFailed, "rewrite %s: %v", dest, err)
	}

	logger.ComponentLogger("pipeline.normalize").Debugw("artifact normalized",
		logger.FieldArtifact, dest)
	return nil
}
