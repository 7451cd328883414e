package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadAxe loads Axe configuration.
// Search order: customPath -> ~/.arcade/configs/axe.{yaml,toml} -> ./configs/axe.{yaml,toml} -> embedded default
func LoadAxe(customPath string) (AxeConfig, error) {
	cfg, err := load("axe", customPath, defaultAxeYAML, DefaultAxeConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadDasher loads Dapper Dasher configuration.
// Search order: customPath -> ~/.arcade/configs/dasher.{yaml,toml} -> ./configs/dasher.{yaml,toml} -> embedded default
func LoadDasher(customPath string) (DasherConfig, error) {
	cfg, err := load("dasher", customPath, defaultDasherYAML, DefaultDasherConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyAxePreset modifies the config based on a difficulty preset.
func ApplyAxePreset(cfg *AxeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ApplyDasherPreset modifies the config based on a difficulty preset.
func ApplyDasherPreset(cfg *DasherConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ResolvePath returns the file LoadAxe/LoadDasher would read for a game,
// or "" when the embedded default is used.
func ResolvePath(gameID, customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range searchPaths(gameID) {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// DecodeFile reads a config file into out, choosing the format by extension.
func DecodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(path, data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// load fills a config of type T. Files are decoded over the embedded
// defaults so a partial file only overrides what it names.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	base := fallback()
	if err := yaml.Unmarshal(embedded, &base); err != nil {
		base = fallback()
	}

	// A custom path must load; errors are reported
	if customPath != "" {
		cfg := base
		if err := DecodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Search paths are best-effort; a broken file falls through
	for _, p := range searchPaths(gameID) {
		cfg := base
		if err := DecodeFile(p, &cfg); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

func decode(path string, data []byte, out any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(out)
		return err
	}
	return yaml.Unmarshal(data, out)
}

// searchPaths lists the implicit locations for a game's config file.
func searchPaths(gameID string) []string {
	var paths []string
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		if p := userConfigPath(gameID + ext); p != "" {
			paths = append(paths, p)
		}
	}
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		paths = append(paths, filepath.Join("configs", gameID+ext))
	}
	return paths
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
