package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: final status, errors with hints
//	1 (-v)      - + Stage progress, catalog summary, artifact path
//	2 (-vv)     - + Stage timing, config values, skipped catalog files
//	3 (-vvv)    - + External generator stdout/stderr, per-icon detail

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Final pipeline status
	OutputErrors                           // Errors with hints and the failing stage

	// Level 1 (-v) - Informational
	OutputStageProgress  // Stage start/finish ("relocated icons_gen.go")
	OutputCatalogSummary // Icon/category counts after scanning

	// Level 2 (-vv) - Detailed
	OutputStageTiming  // Per-stage durations
	OutputConfig       // Config values loaded/applied
	OutputSkippedFiles // Catalog files that did not match the naming pattern

	// Level 3 (-vvv) - Debug
	OutputGeneratorLogs // External generator stdout/stderr forwarding
	OutputIconDetail    // Per-icon emission detail
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputStageProgress:  VerbosityInfo,
	OutputCatalogSummary: VerbosityInfo,

	OutputStageTiming:  VerbosityDebug,
	OutputConfig:       VerbosityDebug,
	OutputSkippedFiles: VerbosityDebug,

	OutputGeneratorLogs: VerbosityTrace,
	OutputIconDetail:    VerbosityTrace,
}

// ShouldOutput reports whether a category should be shown at the given
// verbosity. Unknown categories are shown only at trace level and above.
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
