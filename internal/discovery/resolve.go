// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"
	"slices"

	"github.com/bstools/bstools/internal/runner"
)

// ResolvedCommand is a command file found by walking one runner's tree.
// It is immutable and consumed once by the dispatcher.
type ResolvedCommand struct {
	// CommandPath is the path of the non-directory entry that was reached.
	CommandPath string
	// RemainingArgs are the arguments not consumed by the walk, in order.
	RemainingArgs []string
	// Runner is the descriptor whose tree produced the match.
	Runner runner.Descriptor
}

// Args returns a copy of the remaining arguments.
func (c *ResolvedCommand) Args() []string {
	return slices.Clone(c.RemainingArgs)
}

// Resolve walks every runner in registry order and returns the single command
// args lead to.
//
// It returns (nil, nil) when no runner matches, including for an empty args
// list, which can never resolve. When more than one runner matches and the
// policy is PolicyFailOnAmbiguity it returns an *AmbiguousCommandError.
func (d *Discovery) Resolve(args []string) (*ResolvedCommand, error) {
	if len(args) == 0 {
		return nil, nil
	}

	res := NewResolution(d.policy)
	for _, desc := range d.registry.Descriptors() {
		walked, ok := walkCommand(d.probe, desc.Root, args)
		if !ok {
			slog.Debug("runner has no match", "runner", desc.Name)
			continue
		}

		slog.Debug("runner matched command", "runner", desc.Name, "path", walked.path)
		res.Observe(&ResolvedCommand{
			CommandPath:   walked.path,
			RemainingArgs: walked.remaining,
			Runner:        desc,
		})
	}

	switch res.Finish() {
	case StateResolved:
		return res.Command(), nil
	case StateAmbiguous:
		return nil, newAmbiguousCommandError(args, res.Matches())
	default:
		return nil, nil
	}
}

func newAmbiguousCommandError(args []string, matches []*ResolvedCommand) *AmbiguousCommandError {
	err := &AmbiguousCommandError{Args: slices.Clone(args)}
	for _, m := range matches {
		err.Runners = append(err.Runners, m.Runner.Name)
		err.Paths = append(err.Paths, m.CommandPath)
	}
	return err
}
