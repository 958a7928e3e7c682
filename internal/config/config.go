package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultNetwork = "ethereum"
	defaultMode    = "mainnet"
	defaultWindow  = "24h"

	configFile = "config.json"
)

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.callscope.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".callscope")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.CustomExplorers == nil {
		cfg.CustomExplorers = make(map[string]string)
	}
	if cfg.ExplorerKeys == nil {
		cfg.ExplorerKeys = make(map[string]string)
	}

	return cfg, nil
}

func defaults(dir string) *Config {
	return &Config{
		DefaultNetwork:  defaultNetwork,
		NetworkMode:     defaultMode,
		DefaultWindow:   defaultWindow,
		CustomExplorers: make(map[string]string),
		ExplorerKeys:    make(map[string]string),
		configDir:       dir,
	}
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// Window parses the configured default report window. Falls back to 24h if
// the stored value is unparseable.
func (c *Config) Window() time.Duration {
	d, err := time.ParseDuration(c.DefaultWindow)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultWindow)
	}
	return d
}

// ExplorerAPIOverride returns the custom explorer API URL for a chain slug,
// or "" when the registry default should be used.
func (c *Config) ExplorerAPIOverride(chain string) string {
	return c.CustomExplorers[chain]
}

// SetExplorerAPI stores a custom explorer API URL for a chain slug.
func (c *Config) SetExplorerAPI(chain, url string) {
	if c.CustomExplorers == nil {
		c.CustomExplorers = make(map[string]string)
	}
	c.CustomExplorers[chain] = url
}
