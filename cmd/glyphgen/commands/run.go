package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/pipeline"
)

// RunCmd executes the full pipeline once.
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full icon generation pipeline",
	Long: `Run the four pipeline stages in order: generate the icon table from
the catalog, install it at the canonical source location, normalize its
formatting, and type-check the consuming project.

The first failing stage stops the run. A validation failure leaves the
installed file in place so the diagnostics can be inspected.

Examples:
  glyphgen run              # everything from config / defaults
  glyphgen run -vv          # with per-stage debug logging
  glyphgen run --json       # machine-readable stage events`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		workspace, cleanup, err := makeWorkspace(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		result := pipeline.NewRunner(cfg, workspace, emitterFor(cmd)).Run(cmd.Context())
		if err := result.Err(); err != nil {
			hints := errors.FlattenHints(err)
			if hints != "" {
				return errors.Newf("%s stage failed: %v\nhint: %s", result.FailedStage(), err, hints)
			}
			return errors.Newf("%s stage failed: %v", result.FailedStage(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "installed %s (%d icons)\n", result.Artifact, result.Icons)
		return nil
	},
}
