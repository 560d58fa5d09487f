package config

import (
	"path/filepath"
	"strings"

	"github.com/forgeworks/glyphgen/errors"
)

// Validate checks the configuration for values that would make a pipeline
// run fail in a confusing way later. It does not touch the filesystem; the
// pipeline stages own existence checks so their failures land in the right
// taxonomy class.
func (c *Config) Validate() error {
	if c.Catalog.Source == "" {
		return errors.New("catalog.source must not be empty")
	}

	if c.Project.ArtifactPath == "" {
		return errors.New("project.artifact_path must not be empty")
	}
	if filepath.IsAbs(c.Project.ArtifactPath) {
		return errors.Newf("project.artifact_path must be relative to project.root, got %q", c.Project.ArtifactPath)
	}
	if !strings.HasSuffix(c.Project.ArtifactPath, ".go") {
		return errors.Newf("project.artifact_path must name a Go source file, got %q", c.Project.ArtifactPath)
	}

	if c.Project.Package == "" {
		return errors.New("project.package must not be empty")
	}

	if c.Generator.ArtifactName == "" {
		return errors.New("generator.artifact_name must not be empty")
	}
	if strings.ContainsRune(c.Generator.ArtifactName, filepath.Separator) {
		return errors.Newf("generator.artifact_name must be a bare file name, got %q", c.Generator.ArtifactName)
	}

	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	if c.Watch.RunsPerMin <= 0 {
		return errors.Newf("watch.runs_per_min must be > 0, got %d", c.Watch.RunsPerMin)
	}

	return nil
}

// ArtifactDestination resolves the canonical source location against the
// project root.
func (c *Config) ArtifactDestination() string {
	return filepath.Join(c.Project.Root, c.Project.ArtifactPath)
}
