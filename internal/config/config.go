package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultPrompt = "Select worktree > "

// Config captures the user editable settings stored in wt/config.toml under
// the user config directory. Everything is optional; a missing file behaves
// identically to an empty one.
type Config struct {
	// DefaultBranch overrides discovery of the merge target via the origin
	// remote's HEAD branch.
	DefaultBranch string `toml:"default_branch"`
	// Prompt is shown by the interactive worktree finder.
	Prompt string    `toml:"prompt"`
	Sync   SyncBlock `toml:"sync"`
}

// SyncBlock governs what happens in a freshly added worktree.
type SyncBlock struct {
	Fetch *bool `toml:"fetch"`
	Merge *bool `toml:"merge"`
}

// FetchEnabled reports whether `git fetch --all` runs after `wt add`.
func (s SyncBlock) FetchEnabled() bool {
	if s.Fetch == nil {
		return true
	}
	return *s.Fetch
}

// MergeEnabled reports whether the default branch is merged after `wt add`.
func (s SyncBlock) MergeEnabled() bool {
	if s.Merge == nil {
		return true
	}
	return *s.Merge
}

// Default returns the baseline configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = defaultPrompt
	}
}

// DefaultPath locates the config file under the user config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "wt", "config.toml"), nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
