// Package commands implements the glyphgen CLI commands.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/pipeline"
)

// loadConfig loads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// emitterFor picks the progress surface from the command's flags.
func emitterFor(cmd *cobra.Command) pipeline.Emitter {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return pipeline.NewJSONEmitter(cmd.OutOrStdout())
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")
	return pipeline.NewCLIEmitter(verbosity)
}

// makeWorkspace resolves the run's workspace directory. An empty
// workspace.dir means a fresh temp directory; the returned cleanup removes
// it unless workspace.keep is set.
func makeWorkspace(cfg *config.Config) (string, func(), error) {
	if cfg.Workspace.Dir != "" {
		if err := os.MkdirAll(cfg.Workspace.Dir, 0o755); err != nil {
			return "", nil, errors.Wrapf(err, "cannot create workspace %s", cfg.Workspace.Dir)
		}
		return cfg.Workspace.Dir, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "glyphgen-*")
	if err != nil {
		return "", nil, errors.Wrap(err, "cannot create workspace")
	}
	cleanup := func() {
		if !cfg.Workspace.Keep {
			os.RemoveAll(dir)
		}
	}
	return dir, cleanup, nil
}
