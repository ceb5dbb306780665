package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project configuration file looked up from the working
// directory upward.
const ManifestName = "interlit.toml"

// Config is the parsed interlit.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Limits LimitsConfig `toml:"limits"`
	Cache  CacheConfig  `toml:"cache"`
}

// OutputConfig controls diagnostic rendering.
type OutputConfig struct {
	Format string `toml:"format"` // "pretty" or "json"
	Color  string `toml:"color"`  // "auto", "always", "never"
}

// LimitsConfig caps resource use.
type LimitsConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Limits: LimitsConfig{MaxDiagnostics: 100},
		Cache:  CacheConfig{Enabled: false},
	}
}

// FindManifest walks up from startDir to locate interlit.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads configuration starting from startDir: the nearest manifest
// merged over defaults, or plain defaults when none is found.
func Load(startDir string) (Config, error) {
	cfg := DefaultConfig()
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Limits.MaxDiagnostics <= 0 && meta.IsDefined("limits", "max_diagnostics") {
		return DefaultConfig(), fmt.Errorf("%s: limits.max_diagnostics must be positive", path)
	}
	if cfg.Limits.MaxDiagnostics <= 0 {
		cfg.Limits.MaxDiagnostics = DefaultConfig().Limits.MaxDiagnostics
	}
	return cfg, nil
}
