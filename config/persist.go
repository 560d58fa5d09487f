package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/forgeworks/glyphgen/errors"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying a config file
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Log deletion failures (but don't fail config save)
		fmt.Printf("⚠️  Failed to delete old backup %s: %v\n", back3, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(back1, content, 0o644); err != nil {
		return errors.Wrap(err, "failed to write backup")
	}

	return nil
}

// persistedConfig mirrors Config with TOML tags for serialization.
// Viper reads mapstructure tags; pelletier writes toml tags.
type persistedConfig struct {
	Catalog struct {
		Source     string   `toml:"source"`
		Manifest   string   `toml:"manifest,omitempty"`
		Categories []string `toml:"categories,omitempty"`
	} `toml:"catalog"`
	Workspace struct {
		Dir  string `toml:"dir,omitempty"`
		Keep bool   `toml:"keep,omitempty"`
	} `toml:"workspace"`
	Project struct {
		Root         string `toml:"root"`
		ArtifactPath string `toml:"artifact_path"`
		Package      string `toml:"package"`
	} `toml:"project"`
	Generator struct {
		Command      string `toml:"command,omitempty"`
		ArtifactName string `toml:"artifact_name"`
	} `toml:"generator"`
	Watch struct {
		DebounceMS int `toml:"debounce_ms"`
		RunsPerMin int `toml:"runs_per_min"`
	} `toml:"watch"`
	Log struct {
		Theme string `toml:"theme"`
		JSON  bool   `toml:"json,omitempty"`
	} `toml:"log"`
}

// Save writes the configuration to configPath as TOML, rotating backups of
// any existing file first.
func Save(c *Config, configPath string) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid config")
	}

	if err := createBackup(configPath); err != nil {
		return err
	}

	var p persistedConfig
	p.Catalog.Source = c.Catalog.Source
	p.Catalog.Manifest = c.Catalog.Manifest
	p.Catalog.Categories = c.Catalog.Categories
	p.Workspace.Dir = c.Workspace.Dir
	p.Workspace.Keep = c.Workspace.Keep
	p.Project.Root = c.Project.Root
	p.Project.ArtifactPath = c.Project.ArtifactPath
	p.Project.Package = c.Project.Package
	p.Generator.Command = c.Generator.Command
	p.Generator.ArtifactName = c.Generator.ArtifactName
	p.Watch.DebounceMS = c.Watch.DebounceMS
	p.Watch.RunsPerMin = c.Watch.RunsPerMin
	p.Log.Theme = c.Log.Theme
	p.Log.JSON = c.Log.JSON

	content, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create config directory")
		}
	}

	if err := os.WriteFile(configPath, content, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

// Default returns a Config populated with the built-in defaults, for
// `glyphgen config init` and tests.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source:     "material-design-icons",
			Categories: DefaultCategories,
		},
		Project: ProjectConfig{
			Root:         ".",
			ArtifactPath: DefaultArtifactPath,
			Package:      DefaultPackage,
		},
		Generator: GeneratorConfig{
			ArtifactName: DefaultArtifactName,
		},
		Watch: WatchConfig{
			DebounceMS: DefaultDebounceMS,
			RunsPerMin: DefaultRunsPerMin,
		},
		Log: LogConfig{
			Theme: "everforest",
		},
	}
}
