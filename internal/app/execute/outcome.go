// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"fmt"

	"github.com/bstools/bstools/internal/fsprobe"
	"github.com/bstools/bstools/internal/runtime"
)

const (
	// OutcomeDispatched means a command was resolved and launched.
	// Result carries the exit code.
	OutcomeDispatched OutcomeKind = iota + 1
	// OutcomeOptionsToDisplay means no command matched but the arguments
	// name an existing directory. Options may be empty.
	OutcomeOptionsToDisplay
	// OutcomeAmbiguousCommand means two or more runners matched.
	OutcomeAmbiguousCommand
	// OutcomeNoMatchInvalid means no runner contains the argument path.
	OutcomeNoMatchInvalid
	// OutcomePlanned means a command was resolved and its invocation built
	// without launching it.
	OutcomePlanned
)

type (
	// OutcomeKind classifies what a Service call did.
	OutcomeKind int

	// Outcome is the result of one Service call.
	Outcome struct {
		Kind OutcomeKind
		// Args are the arguments the call was made with.
		Args []string
		// Options lists entries for OutcomeOptionsToDisplay, sorted by name.
		Options []fsprobe.Entry
		// Result is set for OutcomeDispatched and OutcomePlanned.
		Result *runtime.Result
	}
)

// String returns the kind name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDispatched:
		return "dispatched"
	case OutcomeOptionsToDisplay:
		return "options"
	case OutcomeAmbiguousCommand:
		return "ambiguous"
	case OutcomeNoMatchInvalid:
		return "invalid"
	case OutcomePlanned:
		return "planned"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// IsRootListing reports whether the outcome lists the runner roots.
func (o Outcome) IsRootListing() bool {
	return o.Kind == OutcomeOptionsToDisplay && len(o.Args) == 0
}

// LastArg returns the last argument, or "" when there are none.
func (o Outcome) LastArg() string {
	if len(o.Args) == 0 {
		return ""
	}
	return o.Args[len(o.Args)-1]
}
