package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/pipeline"
)

// WatchCmd re-runs the pipeline on catalog changes until interrupted.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the pipeline when the catalog changes",
	Long: `Watch the catalog directory and re-run the full pipeline when its
contents change. Changes are debounced and re-runs are rate limited, so a
burst of edits triggers one run.

A failed run is reported and watching continues. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		w, err := pipeline.NewWatcher(cfg, emitterFor(cmd))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
