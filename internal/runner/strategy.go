// SPDX-License-Identifier: MPL-2.0

package runner

import "fmt"

type (
	// Strategy describes how a resolved command file is launched.
	// The interface is sealed: only the types in this file implement it.
	Strategy interface {
		// Kind returns the strategy tag.
		Kind() StrategyKind
		sealed()
	}

	// StrategyKind is the tag of a Strategy.
	StrategyKind int

	// DirectExecutable runs the command file itself.
	DirectExecutable struct{}

	// InterpretedScript runs the command file through an interpreter whose
	// path is read from the environment variable InterpreterEnv.
	InterpretedScript struct {
		InterpreterEnv string
	}

	// CommandAlias reads a single-line command template from the command file
	// and fills its %s placeholders with arguments.
	CommandAlias struct{}

	// ArchiveRuntime runs the command file through a launcher whose path is
	// read from LauncherEnv, passing LaunchFlag before the archive path.
	ArchiveRuntime struct {
		LauncherEnv string
		LaunchFlag  string
	}
)

const (
	// KindDirectExecutable tags DirectExecutable.
	KindDirectExecutable StrategyKind = iota + 1
	// KindInterpretedScript tags InterpretedScript.
	KindInterpretedScript
	// KindCommandAlias tags CommandAlias.
	KindCommandAlias
	// KindArchiveRuntime tags ArchiveRuntime.
	KindArchiveRuntime
)

// String returns the strategy tag name.
func (k StrategyKind) String() string {
	switch k {
	case KindDirectExecutable:
		return "executable"
	case KindInterpretedScript:
		return "interpreted"
	case KindCommandAlias:
		return "alias"
	case KindArchiveRuntime:
		return "archive"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

// Kind implements Strategy.
func (DirectExecutable) Kind() StrategyKind { return KindDirectExecutable }

// Kind implements Strategy.
func (InterpretedScript) Kind() StrategyKind { return KindInterpretedScript }

// Kind implements Strategy.
func (CommandAlias) Kind() StrategyKind { return KindCommandAlias }

// Kind implements Strategy.
func (ArchiveRuntime) Kind() StrategyKind { return KindArchiveRuntime }

func (DirectExecutable) sealed()  {}
func (InterpretedScript) sealed() {}
func (CommandAlias) sealed()      {}
func (ArchiveRuntime) sealed()    {}
