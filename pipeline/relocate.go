package pipeline

import (
	"os"
	"path/filepath"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// relocate installs the workspace artifact at the canonical source location.
// The write is atomic: a temp file in the destination directory is synced and
// renamed over the destination, so readers never observe a half-written file.
// Relocating the same artifact twice is a no-op by content.
func (r *Runner) relocate(artifact string) (string, error) {
	data, err := os.ReadFile(artifact)
	if err != nil {
		return "", errors.Wrapf(errors.ErrArtifactMissing,
			"workspace artifact %s: %v", artifact, err)
	}

	dest := r.cfg.ArtifactDestination()
	destDir := filepath.Dir(dest)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", errors.Wrapf(errors.ErrDestinationUnwritable,
			"cannot create %s: %v", destDir, err)
	}

	// Temp file must live in the destination directory; rename is only
	// atomic within one filesystem.
	tmp, err := os.CreateTemp(destDir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return "", errors.Wrapf(errors.ErrDestinationUnwritable,
			"cannot write into %s: %v", destDir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", errors.Wrapf(errors.ErrDestinationUnwritable, "write %s: %v", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", errors.Wrapf(errors.ErrDestinationUnwritable, "sync %s: %v", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrapf(errors.ErrDestinationUnwritable, "close %s: %v", tmpName, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return "", errors.Wrapf(errors.ErrDestinationUnwritable,
			"cannot replace %s: %v", dest, err)
	}

	logger.ComponentLogger("pipeline.relocate").Debugw("artifact installed",
		logger.FieldArtifact, dest,
		logger.FieldCount, len(data))

	return dest, nil
}
