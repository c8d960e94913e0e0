// Package config handles loading and managing IELS configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iels/iels/pkg/synth"
	"github.com/iels/iels/pkg/system"
)

// Config is the top-level configuration for IELS.
type Config struct {
	Synthesis SynthesisConfig `yaml:"synthesis"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// SynthesisConfig controls synthetic system generation.
type SynthesisConfig struct {
	Seed   uint64 `yaml:"seed"`
	Length int    `yaml:"length"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	Epsilon float64            `yaml:"epsilon"`
	Weights map[string]float64 `yaml:"weights"` // keyed by indicator key
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Synthesis: SynthesisConfig{
			Seed:   synth.DefaultSeed,
			Length: synth.DefaultLength,
		},
		Scoring: ScoringConfig{
			Epsilon: system.Epsilon,
			Weights: map[string]float64{},
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .iels/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".iels", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for a given working directory.
// Uses ~/.cache/iels/<slug>/ to avoid polluting the working tree.
func CacheDir(workDir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	slug := dirSlug(workDir)
	return filepath.Join(home, ".cache", "iels", slug)
}

// SystemDir returns the saved-system storage directory for a working directory.
func SystemDir(workDir string) string {
	return filepath.Join(CacheDir(workDir), "systems")
}

// ScoreDir returns the score result storage directory for a working directory.
func ScoreDir(workDir string) string {
	return filepath.Join(CacheDir(workDir), "scores")
}

// dirSlug creates a filesystem-safe identifier from a directory path.
// Uses the last two path components (e.g., "user_myproject").
func dirSlug(workDir string) string {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		abs = workDir
	}
	dir := filepath.Base(filepath.Dir(abs))
	base := filepath.Base(abs)
	return dir + "_" + base
}
