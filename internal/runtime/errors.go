// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEnv is the sentinel error wrapped by MissingEnvError.
	ErrMissingEnv = errors.New("mandatory environment variable not set")

	// ErrMultiLineAlias is the sentinel error wrapped by MultiLineAliasError.
	ErrMultiLineAlias = errors.New("alias file contains more than one line")

	// ErrMissingAliasArgument is the sentinel error wrapped by MissingAliasArgumentError.
	ErrMissingAliasArgument = errors.New("alias expects more arguments")

	// ErrSpawnFailed is the sentinel error wrapped by SpawnError.
	ErrSpawnFailed = errors.New("failed to launch process")

	// ErrUnknownSplitter is the sentinel error wrapped by UnknownSplitterError.
	ErrUnknownSplitter = errors.New("unknown alias split mode")

	// ErrUnsupportedStrategy is returned for a strategy the dispatcher does not know.
	ErrUnsupportedStrategy = errors.New("unsupported runner strategy")
)

type (
	// MissingEnvError is returned when an interpreter or launcher variable is unset.
	MissingEnvError struct {
		// Name is the environment variable.
		Name string
		// Purpose describes what the variable must point at.
		Purpose string
	}

	// MultiLineAliasError is returned when an alias file holds more than one line.
	MultiLineAliasError struct {
		Path string
	}

	// MissingAliasArgumentError is returned when an alias has more %s
	// placeholders than supplied arguments.
	MissingAliasArgumentError struct {
		// Alias is the literal alias text.
		Alias string
		// Placeholders is the number of %s tokens in Alias.
		Placeholders int
		// Supplied is the number of arguments that were available.
		Supplied int
	}

	// SpawnError is returned when the process could not be started.
	SpawnError struct {
		Program string
		Err     error
	}

	// UnknownSplitterError is returned for an unrecognized split mode name.
	UnknownSplitterError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("mandatory environment variable '%s' does not exist; it must contain the path to the %s", e.Name, e.Purpose)
}

// Unwrap returns ErrMissingEnv so callers can use errors.Is for programmatic detection.
func (e *MissingEnvError) Unwrap() error { return ErrMissingEnv }

// Error implements the error interface.
func (e *MultiLineAliasError) Error() string {
	return fmt.Sprintf("command file %s contains more than one line; only single line commands are supported", e.Path)
}

// Unwrap returns ErrMultiLineAlias so callers can use errors.Is for programmatic detection.
func (e *MultiLineAliasError) Unwrap() error { return ErrMultiLineAlias }

// Error implements the error interface.
func (e *MissingAliasArgumentError) Error() string {
	return fmt.Sprintf("the following command expects %d argument(s) to replace the %%s token(s), got %d: %s",
		e.Placeholders, e.Supplied, e.Alias)
}

// Unwrap returns ErrMissingAliasArgument so callers can use errors.Is for programmatic detection.
func (e *MissingAliasArgumentError) Unwrap() error { return ErrMissingAliasArgument }

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Program, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *SpawnError) Unwrap() []error { return []error{ErrSpawnFailed, e.Err} }

// Error implements the error interface.
func (e *UnknownSplitterError) Error() string {
	return fmt.Sprintf("unknown alias split mode %q (valid: %s, %s)", e.Value, SplitNaive, SplitShell)
}

// Unwrap returns ErrUnknownSplitter so callers can use errors.Is for programmatic detection.
func (e *UnknownSplitterError) Unwrap() error { return ErrUnknownSplitter }
