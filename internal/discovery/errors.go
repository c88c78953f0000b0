// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bstools/bstools/internal/runner"
)

// ErrAmbiguousCommand is the sentinel error wrapped by AmbiguousCommandError.
var ErrAmbiguousCommand = errors.New("ambiguous command")

// AmbiguousCommandError is returned when two or more runners resolve the same
// argument list. Commands must be unique across runners.
type AmbiguousCommandError struct {
	// Args is the full argument list that was resolved.
	Args []string
	// Runners names the matching runners in registry order.
	Runners []runner.Name
	// Paths holds the matching command paths, parallel to Runners.
	Paths []string
}

// Error implements the error interface.
func (e *AmbiguousCommandError) Error() string {
	names := make([]string, len(e.Runners))
	for i, n := range e.Runners {
		names[i] = string(n)
	}
	return fmt.Sprintf("more than one command exists for arguments '%s' (runners: %s); commands must be unique",
		strings.Join(e.Args, " "), strings.Join(names, ", "))
}

// Unwrap returns ErrAmbiguousCommand so callers can use errors.Is for programmatic detection.
func (e *AmbiguousCommandError) Unwrap() error { return ErrAmbiguousCommand }
