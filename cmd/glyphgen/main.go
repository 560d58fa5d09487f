package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgeworks/glyphgen/cmd/glyphgen/commands"
	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "glyphgen",
	Short: "glyphgen - icon catalog to Go source pipeline",
	Long: `glyphgen turns an SVG icon catalog into a generated Go source file,
installs it inside a consuming project, formats it, and type-checks the
result. Stages run strictly in order and the first failure stops the run.

Available commands:
  run     - Run the full pipeline (also the default when no command is given)
  check   - Verify the installed icon table is up to date
  watch   - Re-run the pipeline when the catalog changes
  config  - Show or initialize configuration
  version - Show build information

Examples:
  glyphgen run                      # full pipeline with config defaults
  glyphgen check                    # exit 1 if the table is stale
  glyphgen watch -v                 # watch the catalog, re-run on change
  glyphgen config init              # write a starter glyphgen.toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if !jsonOutput {
			if cfg, err := config.Load(); err == nil {
				jsonOutput = cfg.Log.JSON
			}
		}

		if err := logger.InitializeWithLevel(jsonOutput, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	// Bare `glyphgen` runs the pipeline
	RunE: commands.RunCmd.RunE,
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Structured JSON output instead of terminal progress")

	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
