package pipeline

import (
	"bytes"
	"context"
	"os"

	"golang.org/x/tools/imports"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// CheckResult reports whether the installed artifact matches what a run would
// produce today.
type CheckResult struct {
	UpToDate bool
	Dest     string // canonical source location that was compared
	Missing  bool   // no artifact installed at all
	Icons    int
}

// Check regenerates into the workspace and compares against the canonical
// source location without touching it. The freshly generated table is
// normalized before comparison so formatting alone never reads as stale.
func (r *Runner) Check(ctx context.Context) (*CheckResult, error) {
	artifact, icons, err := r.generate(ctx, "check")
	if err != nil {
		return nil, err
	}

	fresh, err := os.ReadFile(artifact)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrArtifactMissing, "workspace artifact %s: %v", artifact, err)
	}
	normalized, err := imports.Process(artifact, fresh, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNormalizeFailed, "%s: %v", artifact, err)
	}

	dest := r.cfg.ArtifactDestination()
	result := &CheckResult{Dest: dest, Icons: icons}

	installed, err := os.ReadFile(dest)
	if os.IsNotExist(err) {
		result.Missing = true
		return result, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDestinationUnwritable, "cannot read %s: %v", dest, err)
	}

	result.UpToDate = bytes.Equal(installed, normalized)

	logger.ComponentLogger("pipeline.check").Debugw("checked artifact",
		logger.FieldArtifact, dest,
		logger.FieldIcons, icons,
		"up_to_date", result.UpToDate)

	return result, nil
}
