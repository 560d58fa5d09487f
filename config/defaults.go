package config

import "github.com/spf13/viper"

// SetDefaults applies the built-in defaults to a Viper instance. A bare run
// with no config file scans ./material-design-icons and installs the artifact
// at icons/icons_gen.go under the current directory.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog.source", "material-design-icons")
	v.SetDefault("catalog.manifest", "")
	v.SetDefault("catalog.categories", DefaultCategories)

	v.SetDefault("workspace.dir", "")
	v.SetDefault("workspace.keep", false)

	v.SetDefault("project.root", ".")
	v.SetDefault("project.artifact_path", DefaultArtifactPath)
	v.SetDefault("project.package", DefaultPackage)

	v.SetDefault("generator.command", "")
	v.SetDefault("generator.artifact_name", DefaultArtifactName)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
	v.SetDefault("watch.runs_per_min", DefaultRunsPerMin)

	v.SetDefault("log.theme", "everforest")
	v.SetDefault("log.json", false)
}
