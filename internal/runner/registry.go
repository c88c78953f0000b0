// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
)

// Runner names. They double as the directory names under the home directory.
const (
	NameExecutables Name = "executables"
	NamePython      Name = "python"
	NameCommands    Name = "commands"
	NameJava        Name = "java"
)

// Environment variables consulted by interpreted and archive runners.
const (
	EnvPython = "BS_PYTHON"
	EnvJava   = "BS_JAVA"

	// JarLaunchFlag is passed to the Java launcher before the archive path.
	JarLaunchFlag = "-jar"

	// DataDirName is the directory created next to the runner roots for
	// commands to keep state in.
	DataDirName = "data"
)

// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
var ErrInvalidName = errors.New("invalid runner name")

type (
	// Name identifies a runner. Only the constants above are valid.
	Name string

	// InvalidNameError is returned when a Name is not one of the known runners.
	InvalidNameError struct {
		Value Name
	}

	// Descriptor names a runner root directory and its execution strategy.
	// Descriptors are immutable once built by NewRegistry.
	Descriptor struct {
		// Name is the runner identifier.
		Name Name
		// Root is the absolute root directory of the runner tree.
		Root string
		// Strategy is how commands below Root are launched.
		Strategy Strategy
	}

	// Registry is the ordered runner list. Order is the resolution order.
	Registry struct {
		home        string
		descriptors []Descriptor
	}
)

// Names returns every runner name in registry order.
func Names() []Name {
	return []Name{NameExecutables, NamePython, NameCommands, NameJava}
}

// String returns the runner name.
func (n Name) String() string { return string(n) }

// Validate returns nil if n is one of the known runner names.
func (n Name) Validate() error {
	if slices.Contains(Names(), n) {
		return nil
	}
	return &InvalidNameError{Value: n}
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid runner name %q (valid: %s, %s, %s, %s)",
		e.Value, NameExecutables, NamePython, NameCommands, NameJava)
}

// Unwrap returns ErrInvalidName so callers can use errors.Is for programmatic detection.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// StrategyFor returns the execution strategy bound to a runner name.
func StrategyFor(n Name) (Strategy, error) {
	switch n {
	case NameExecutables:
		return DirectExecutable{}, nil
	case NamePython:
		return InterpretedScript{InterpreterEnv: EnvPython}, nil
	case NameCommands:
		return CommandAlias{}, nil
	case NameJava:
		return ArchiveRuntime{LauncherEnv: EnvJava, LaunchFlag: JarLaunchFlag}, nil
	default:
		return nil, &InvalidNameError{Value: n}
	}
}

// NewRegistry builds the full runner set rooted at home.
func NewRegistry(home string) *Registry {
	descriptors := make([]Descriptor, 0, len(Names()))
	for _, name := range Names() {
		strategy, _ := StrategyFor(name)
		descriptors = append(descriptors, Descriptor{
			Name:     name,
			Root:     filepath.Join(home, string(name)),
			Strategy: strategy,
		})
	}
	return &Registry{home: home, descriptors: descriptors}
}

// NewRegistryFrom builds a registry from explicit descriptors, preserving order.
// It is used by tests and by callers that mount runners outside a home directory.
func NewRegistryFrom(home string, descriptors ...Descriptor) *Registry {
	return &Registry{home: home, descriptors: slices.Clone(descriptors)}
}

// Home returns the home directory the registry was built from.
func (r *Registry) Home() string { return r.home }

// Descriptors returns a copy of the runner descriptors in registry order.
func (r *Registry) Descriptors() []Descriptor {
	return slices.Clone(r.descriptors)
}

// Len returns the number of runners.
func (r *Registry) Len() int { return len(r.descriptors) }

// Get returns the descriptor with the given name.
func (r *Registry) Get(name Name) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// DataDir returns the data directory next to the runner roots.
func (r *Registry) DataDir() string {
	return filepath.Join(r.home, DataDirName)
}
