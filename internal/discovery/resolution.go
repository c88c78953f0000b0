// SPDX-License-Identifier: MPL-2.0

package discovery

import "fmt"

const (
	// StateSearching is the initial state: runners are still being tried.
	StateSearching State = iota
	// StateResolved means exactly one runner has matched so far.
	StateResolved
	// StateAmbiguous means a second runner matched. Terminal and fatal.
	StateAmbiguous
	// StateNotFound means every runner was tried without a match. Terminal.
	StateNotFound
)

type (
	// State is a node of the resolution state machine.
	State int

	// Resolution tracks per-runner outcomes for a single argument list.
	//
	//	Searching --match--> Resolved --match--> Ambiguous
	//	Searching --finish--> NotFound
	//	Resolved  --finish--> Resolved
	Resolution struct {
		state   State
		policy  Policy
		matches []*ResolvedCommand
	}
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateResolved:
		return "resolved"
	case StateAmbiguous:
		return "ambiguous"
	case StateNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == StateAmbiguous || s == StateNotFound
}

// NewResolution starts a resolution in StateSearching.
func NewResolution(policy Policy) *Resolution {
	return &Resolution{state: StateSearching, policy: policy}
}

// State returns the current state.
func (r *Resolution) State() State { return r.state }

// Observe feeds one runner's walk result into the machine. A nil match is a
// NoMatch and leaves the state unchanged. Observing after a terminal state is
// a no-op.
func (r *Resolution) Observe(match *ResolvedCommand) {
	if match == nil || r.state.IsTerminal() {
		return
	}

	switch r.state {
	case StateSearching:
		r.matches = append(r.matches, match)
		r.state = StateResolved
	case StateResolved:
		if r.policy == PolicyFirstMatch {
			return
		}
		r.matches = append(r.matches, match)
		r.state = StateAmbiguous
	}
}

// Finish closes the search. Searching becomes NotFound; other states stay.
func (r *Resolution) Finish() State {
	if r.state == StateSearching {
		r.state = StateNotFound
	}
	return r.state
}

// Command returns the single match once the machine is Resolved.
func (r *Resolution) Command() *ResolvedCommand {
	if r.state != StateResolved {
		return nil
	}
	return r.matches[0]
}

// Matches returns every match observed, in registry order.
func (r *Resolution) Matches() []*ResolvedCommand {
	out := make([]*ResolvedCommand, len(r.matches))
	copy(out, r.matches)
	return out
}
