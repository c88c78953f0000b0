// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/bstools/bstools/internal/runner"
)

// EnvExecutionID is exported to every child so scripts can correlate logs
// with a single dispatch.
const EnvExecutionID = "BS_EXECUTION_ID"

// Invocation is a fully built process launch: program plus argv.
type Invocation struct {
	// ExecutionID uniquely identifies this dispatch.
	ExecutionID string
	// Program is the executable to start.
	Program string
	// Args are the program arguments, excluding Program itself.
	Args []string
	// Runner is the runner that produced the command.
	Runner runner.Name
	// Strategy is the runner's strategy tag.
	Strategy runner.StrategyKind
	// CommandPath is the resolved command file.
	CommandPath string
}

// Argv returns Program followed by Args.
func (i *Invocation) Argv() []string {
	return append([]string{i.Program}, i.Args...)
}

// Env returns the variables added to the inherited environment.
func (i *Invocation) Env() []string {
	return []string{EnvExecutionID + "=" + i.ExecutionID}
}

// String renders the invocation as a shell command line. Words that need it
// are quoted; words the shell cannot represent are shown verbatim.
func (i *Invocation) String() string {
	argv := i.Argv()
	quoted := make([]string, 0, len(argv))
	for _, word := range argv {
		q, err := syntax.Quote(word, syntax.LangBash)
		if err != nil {
			q = word
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}

// Clone returns a deep copy.
func (i *Invocation) Clone() *Invocation {
	c := *i
	c.Args = slices.Clone(i.Args)
	return &c
}
