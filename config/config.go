// Package config loads and persists glyphgen configuration.
//
// Configuration comes from (in ascending precedence) built-in defaults, a
// glyphgen.toml file, and GLYPHGEN_* environment variables. The zero
// configuration is a working one: a baseline `glyphgen run` needs no flags
// and no config file when invoked from the consuming project root.
package config

// Config represents the glyphgen pipeline configuration
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Project   ProjectConfig   `mapstructure:"project"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Log       LogConfig       `mapstructure:"log"`
}

// CatalogConfig configures where the icon catalog comes from
type CatalogConfig struct {
	// Source is a local directory or a go-getter URL (git::, https://, file://).
	// Remote sources are fetched into the workspace before scanning.
	Source string `mapstructure:"source"`

	// Manifest is an optional catalog.toml path relative to the catalog root.
	// When present it pins categories, name overrides, and a tool version
	// constraint. Empty means "catalog.toml if it exists".
	Manifest string `mapstructure:"manifest"`

	// Categories overrides the default category list. Ignored when the
	// manifest declares its own.
	Categories []string `mapstructure:"categories"`
}

// WorkspaceConfig configures the generator's isolated working directory
type WorkspaceConfig struct {
	// Dir is the workspace root. Empty means a fresh temp directory per run,
	// which keeps parallel-isolated runs possible.
	Dir string `mapstructure:"dir"`

	// Keep retains the workspace after a successful run (for debugging).
	Keep bool `mapstructure:"keep"`
}

// ProjectConfig describes the consuming project
type ProjectConfig struct {
	// Root is the consuming project's module root (default: current directory)
	Root string `mapstructure:"root"`

	// ArtifactPath is the canonical source location, relative to Root
	ArtifactPath string `mapstructure:"artifact_path"`

	// Package is the package name declared in the generated file
	Package string `mapstructure:"package"`
}

// GeneratorConfig selects the generation program
type GeneratorConfig struct {
	// Command, when non-empty, is an external generator invocation (parsed
	// with shell quoting rules) run inside the workspace. Empty selects the
	// built-in SVG table generator.
	Command string `mapstructure:"command"`

	// ArtifactName is the file the generator must produce in the workspace
	ArtifactName string `mapstructure:"artifact_name"`
}

// WatchConfig tunes watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"` // quiet period after a catalog change (default: 500)
	RunsPerMin int `mapstructure:"runs_per_min"` // rate limit on pipeline re-runs (default: 12)
}

// LogConfig configures log output
type LogConfig struct {
	Theme string `mapstructure:"theme"` // Color theme: everforest, gruvbox
	JSON  bool   `mapstructure:"json"`  // Structured JSON output
}

// Defaults for the canonical source location and workspace artifact
const (
	DefaultArtifactPath = "icons/icons_gen.go"
	DefaultArtifactName = "icons_gen.go"
	DefaultPackage      = "icons"
	DefaultDebounceMS   = 500
	DefaultRunsPerMin   = 12
)

// DefaultCategories is the catalog's category list when neither the config
// nor the manifest overrides it. Matches the Material Design icon layout.
var DefaultCategories = []string{
	"action",
	"alert",
	"av",
	"communication",
	"content",
	"device",
	"editor",
	"file",
	"hardware",
	"image",
	"maps",
	"navigation",
	"notification",
	"places",
	"social",
	"toggle",
}
