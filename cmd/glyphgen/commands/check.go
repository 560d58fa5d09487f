package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgeworks/glyphgen/config"
	"github.com/forgeworks/glyphgen/pipeline"
)

// CheckCmd verifies the installed table against a fresh generation.
//
// Exit codes: 0 up to date, 1 stale or missing, 2 on error. Suited for CI:
// `glyphgen check` in a pipeline catches a catalog change that was never
// regenerated.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the installed icon table is up to date",
	Long: `Regenerate the icon table into a throwaway workspace and compare it
with the installed file at the canonical source location. The installed file
is never modified.

Exit codes:
  0 - installed table matches the catalog
  1 - table is stale or missing
  2 - the comparison itself failed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "check failed: %v\n", err)
			os.Exit(2)
		}

		// runCheck owns the workspace; its defers have unwound by the time
		// we exit, so the temp dir never leaks on the non-zero paths.
		code, err := runCheck(cmd, cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "check failed: %v\n", err)
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// runCheck performs the comparison and maps the outcome to an exit code,
// keeping exit 1 reserved for staleness and 2 for errors.
func runCheck(cmd *cobra.Command, cfg *config.Config) (int, error) {
	workspace, cleanup, err := makeWorkspace(cfg)
	if err != nil {
		return 2, err
	}
	defer cleanup()

	result, err := pipeline.NewRunner(cfg, workspace, nil).Check(cmd.Context())
	if err != nil {
		return 2, err
	}

	switch {
	case result.Missing:
		fmt.Fprintf(cmd.OutOrStdout(), "no icon table installed at %s, run `glyphgen run`\n", result.Dest)
		return 1, nil
	case !result.UpToDate:
		fmt.Fprintf(cmd.OutOrStdout(), "%s is stale, run `glyphgen run`\n", result.Dest)
		return 1, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (%d icons)\n", result.Dest, result.Icons)
	return 0, nil
}
