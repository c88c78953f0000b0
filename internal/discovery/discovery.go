// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"github.com/bstools/bstools/internal/fsprobe"
	"github.com/bstools/bstools/internal/runner"
)

const (
	// PolicyFailOnAmbiguity treats a second matching runner as a fatal error.
	PolicyFailOnAmbiguity Policy = iota
	// PolicyFirstMatch keeps the first runner's match (registry order) and
	// ignores later ones. It is a deliberate policy change, not the default.
	PolicyFirstMatch
)

type (
	// Policy decides what happens when more than one runner matches.
	Policy int

	// Option configures a Discovery.
	Option func(*Discovery)

	// Discovery resolves and enumerates commands across a runner registry.
	// It holds no mutable state between calls.
	Discovery struct {
		probe    *fsprobe.Probe
		registry *runner.Registry
		policy   Policy
	}
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFailOnAmbiguity:
		return "fail-on-ambiguity"
	case PolicyFirstMatch:
		return "first-match"
	default:
		return "unknown"
	}
}

// WithPolicy overrides the ambiguity policy.
func WithPolicy(p Policy) Option {
	return func(d *Discovery) {
		d.policy = p
	}
}

// New creates a Discovery over the given probe and registry.
func New(probe *fsprobe.Probe, registry *runner.Registry, opts ...Option) *Discovery {
	d := &Discovery{
		probe:    probe,
		registry: registry,
		policy:   PolicyFailOnAmbiguity,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
