// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// AliasSplitNaive splits expanded aliases on single spaces.
	AliasSplitNaive AliasSplit = "naive"
	// AliasSplitShell splits expanded aliases with shell quoting rules.
	AliasSplitShell AliasSplit = "shell"
)

var (
	// ErrHomeNotSet is returned when neither BS_HOME nor the home setting is present.
	ErrHomeNotSet = errors.New("mandatory environment variable '" + EnvHome + "' does not exist")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidAliasSplit is returned when an AliasSplit value is not recognized.
	ErrInvalidAliasSplit = errors.New("invalid alias split mode")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// AliasSplit names how expanded alias lines are split into words.
	AliasSplit string

	// InvalidValueError is returned when an enumerated setting has an
	// unrecognized value. Kind is the matching sentinel.
	InvalidValueError struct {
		Field string
		Value string
		Kind  error
	}

	// Config is the effective bs configuration.
	Config struct {
		// Home is the directory holding the runner trees.
		Home string `json:"home" yaml:"home" toml:"home" mapstructure:"home"`
		// Env provides fallback values for interpreter and launcher variables.
		Env map[string]string `json:"env" yaml:"env" toml:"env" mapstructure:"-"`
		// Alias configures alias expansion.
		Alias AliasConfig `json:"alias" yaml:"alias" toml:"alias" mapstructure:"alias"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" yaml:"ui" toml:"ui" mapstructure:"ui"`

		source string
	}

	// AliasConfig configures alias expansion.
	AliasConfig struct {
		Split AliasSplit `json:"split" yaml:"split" toml:"split" mapstructure:"split"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" yaml:"color_scheme" toml:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" yaml:"verbose" toml:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Env: map[string]string{},
		Alias: AliasConfig{
			Split: AliasSplitNaive,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// Source returns the file the configuration was loaded from, or "" when only
// defaults and environment variables were used.
func (c *Config) Source() string { return c.source }

// RequireHome returns the home directory or ErrHomeNotSet.
func (c *Config) RequireHome() (string, error) {
	if c.Home == "" {
		return "", ErrHomeNotSet
	}
	return c.Home, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}
	return c.Alias.Split.Validate()
}

// Validate returns an *InvalidValueError for unknown schemes.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidValueError{Field: "ui.color_scheme", Value: string(s), Kind: ErrInvalidColorScheme}
	}
}

// Validate returns an *InvalidValueError for unknown split modes.
func (a AliasSplit) Validate() error {
	switch a {
	case AliasSplitNaive, AliasSplitShell:
		return nil
	default:
		return &InvalidValueError{Field: "alias.split", Value: string(a), Kind: ErrInvalidAliasSplit}
	}
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %v %q", e.Field, e.Kind, e.Value)
}

// Unwrap returns the sentinel so callers can use errors.Is for programmatic detection.
func (e *InvalidValueError) Unwrap() error { return e.Kind }
