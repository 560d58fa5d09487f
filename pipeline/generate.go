package pipeline

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/forgeworks/glyphgen/catalog"
	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/gen"
	"github.com/forgeworks/glyphgen/logger"
)

// generate produces the artifact inside the workspace and returns its path
// plus the icon count. Nothing outside the workspace is touched; a failure
// here leaves the canonical source location exactly as it was.
func (r *Runner) generate(ctx context.Context, runID string) (string, int, error) {
	artifactName := r.cfg.Generator.ArtifactName
	if artifactName == "" {
		artifactName = config.DefaultArtifactName
	}
	artifact := filepath.Join(r.workspace, artifactName)

	if r.cfg.Generator.Command != "" {
		if err := r.runExternalGenerator(ctx); err != nil {
			return "", 0, err
		}
		if _, err := os.Stat(artifact); err != nil {
			return "", 0, errors.Wrapf(errors.ErrGeneratorFailed,
				"generator command exited 0 but produced no %s in the workspace", artifactName)
		}
		return artifact, 0, nil
	}

	cat, err := r.scanCatalog(ctx)
	if err != nil {
		return "", 0, err
	}

	pkg := r.cfg.Project.Package
	if pkg == "" {
		pkg = config.DefaultPackage
	}
	table, err := gen.Emit(cat, gen.Options{Package: pkg})
	if err != nil {
		return "", 0, err
	}

	if err := os.WriteFile(artifact, table, 0o644); err != nil {
		return "", 0, errors.Wrapf(errors.ErrGeneratorFailed,
			"cannot write artifact %s: %v", artifact, err)
	}

	logger.ComponentLogger("pipeline.generate").Infow("generated icon table",
		logger.FieldRunID, runID,
		logger.FieldArtifact, artifact,
		logger.FieldIcons, cat.Len(),
		logger.FieldSkipped, len(cat.Skipped))

	return artifact, cat.Len(), nil
}

// scanCatalog resolves the configured source, applies the manifest, and scans.
func (r *Runner) scanCatalog(ctx context.Context) (*catalog.Catalog, error) {
	root, err := catalog.Resolve(ctx, r.cfg.Catalog.Source, r.workspace)
	if err != nil {
		return nil, err
	}

	manifest, err := catalog.LoadManifest(catalog.ManifestPath(root, r.cfg.Catalog.Manifest))
	if err != nil {
		return nil, err
	}

	// manifest beats config beats defaults
	categories := manifest.Categories
	if len(categories) == 0 {
		categories = r.cfg.Catalog.Categories
	}
	if len(categories) == 0 {
		categories = config.DefaultCategories
	}

	return catalog.Scan(root, catalog.ScanOptions{
		Categories: categories,
		Rename:     manifest.Rename,
	})
}

// runExternalGenerator executes the configured generator command inside the
// workspace. The command's combined output is attached to the error verbatim
// when it fails.
func (r *Runner) runExternalGenerator(ctx context.Context) error {
	words, err := shellquote.Split(r.cfg.Generator.Command)
	if err != nil {
		return errors.Wrapf(errors.ErrGeneratorFailed,
			"malformed generator command %q: %v", r.cfg.Generator.Command, err)
	}
	if len(words) == 0 {
		return errors.Wrap(errors.ErrGeneratorFailed, "empty generator command")
	}

	log := logger.ComponentLogger("pipeline.generate")
	log.Debugw("invoking external generator",
		logger.FieldBinary, words[0],
		logger.FieldPath, r.workspace)

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = r.workspace
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.WithDetail(
			errors.Wrapf(errors.ErrGeneratorFailed, "generator command %q: %v", r.cfg.Generator.Command, err),
			string(out))
	}
	if len(out) > 0 {
		log.Debugw("generator output", "output", string(out))
	}
	return nil
}
