// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/bstools/bstools/internal/issue"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "bs"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"

	// EnvHome names the home directory variable. It overrides the home setting.
	EnvHome = "BS_HOME"
)

// ConfigDir returns the bs configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// loadWithOptions builds the effective configuration: defaults, then the CUE
// file (explicit path or config dir), then environment variables.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("home", defaults.Home)
	v.SetDefault("alias.split", string(defaults.Alias.Split))
	v.SetDefault("ui.color_scheme", string(defaults.UI.ColorScheme))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	if err := v.BindEnv("home", EnvHome); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", EnvHome, err)
	}

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}

	env := map[string]string{}
	if path != "" {
		env, err = loadCUEIntoViper(v, path)
		if err != nil {
			return nil, configLoadError(path, err)
		}
		slog.Debug("loaded configuration", "path", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Env = env
	cfg.source = path

	if cfg.Home != "" {
		abs, err := filepath.Abs(cfg.Home)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home %s: %w", cfg.Home, err)
		}
		cfg.Home = abs
	}

	if err := cfg.Validate(); err != nil {
		return nil, configLoadError(path, err)
	}
	return cfg, nil
}

// resolveConfigPath returns the file to load, or "" when none exists. An
// explicit path that does not exist is an error; a missing default file is not.
func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}

	path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if !fileExists(path) {
		return "", nil
	}
	return path, nil
}

func configLoadError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the configuration values match the expected schema").
		Wrap(err).
		BuildError()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
