// SPDX-License-Identifier: MPL-2.0

// Package config handles bs configuration using Viper with CUE as the file format.
//
// Configuration is optional. It is loaded from ~/.config/bs/config.cue (or the
// XDG equivalent on Linux, ~/Library/Application Support/bs/config.cue on
// macOS, %APPDATA%\bs\config.cue on Windows) and validated against the
// embedded config_schema.cue. Environment variables win over file values:
// BS_HOME overrides home, and the env map is only a fallback for variables
// missing from the process environment.
//
// The package never writes configuration.
package config
