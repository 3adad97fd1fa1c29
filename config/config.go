// Package config reads the optional per-user YAML configuration. Every
// field has a default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences for the shells.
type Config struct {
	SaveDir string `yaml:"save_dir"` // where /save and /load keep files
	Level   string `yaml:"level"`    // default level ID, overrides the game's start
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		SaveDir: filepath.Join(home, ".sokomaze", "saves"),
	}
}

// Load reads the config at path, layered over the defaults. An empty path
// means the standard location (~/.sokomaze/config.yaml); a missing file at
// the standard location yields the defaults, but an explicitly named file
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".sokomaze", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
