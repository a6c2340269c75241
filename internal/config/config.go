// Package config handles loading and defining the application's
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	defaultConfigDir  = "git-reap"
	defaultConfigFile = "config.toml"

	// DefaultBaseBranch is the branch merge status is checked against.
	DefaultBaseBranch = "main"
	// DefaultRemoteName is the remote used for remote-scope classification
	// and deletion.
	DefaultRemoteName = "origin"
	// DefaultStaleDays is the threshold applied when staleness is enabled
	// without an explicit value.
	DefaultStaleDays = 120
)

// Config holds the application configuration settings. Tags correspond to
// the keys in the TOML configuration file.
type Config struct {
	BaseBranch        string   `toml:"base_branch"`
	RemoteName        string   `toml:"remote_name"`
	ProtectedBranches []string `toml:"protected_branches"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		BaseBranch:        DefaultBaseBranch,
		RemoteName:        DefaultRemoteName,
		ProtectedBranches: []string{},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(userConfigDir, defaultConfigDir, defaultConfigFile), nil
}

// Load reads configuration from the given path, or the default location when
// the path is empty. A missing file is not an error: defaults apply. A file
// that exists but cannot be parsed is an error.
func Load(customPath string) (Config, error) {
	cfg := Default()

	configPath := customPath
	if configPath == "" {
		var err error
		if configPath, err = DefaultPath(); err != nil {
			// No way to locate a config file; run on defaults.
			return cfg, nil
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			if customPath != "" {
				return cfg, fmt.Errorf("config file %q does not exist", customPath)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("error checking config path %q: %w", configPath, err)
	}

	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config file %q: %w", configPath, err)
	}

	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}
	if cfg.RemoteName == "" {
		cfg.RemoteName = DefaultRemoteName
	}
	if cfg.ProtectedBranches == nil {
		cfg.ProtectedBranches = []string{}
	}

	return cfg, nil
}
