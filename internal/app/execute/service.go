// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/spf13/afero"

	"github.com/bstools/bstools/internal/config"
	"github.com/bstools/bstools/internal/discovery"
	"github.com/bstools/bstools/internal/fsprobe"
	"github.com/bstools/bstools/internal/issue"
	"github.com/bstools/bstools/internal/runner"
	"github.com/bstools/bstools/internal/runtime"
)

// OperationPrepareHome names the bootstrap step in actionable errors.
const OperationPrepareHome = "prepare home directory"

type (
	// Service resolves CLI arguments and dispatches commands.
	Service struct {
		registry   *runner.Registry
		discovery  *discovery.Discovery
		dispatcher *runtime.Dispatcher
	}

	// Option configures New.
	Option func(*options)

	options struct {
		fs      afero.Fs
		env     runtime.EnvLookup
		spawner runtime.Spawner
		policy  discovery.Policy
		newID   func() string
	}
)

// WithFs replaces the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithEnv replaces the environment chain (process env, then config env map).
func WithEnv(env runtime.EnvLookup) Option {
	return func(o *options) { o.env = env }
}

// WithSpawner replaces the process launcher.
func WithSpawner(s runtime.Spawner) Option {
	return func(o *options) { o.spawner = s }
}

// WithPolicy sets the ambiguity policy.
func WithPolicy(p discovery.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithIDGenerator overrides execution ID generation.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

// New prepares the home directory described by cfg and returns a Service
// over it. The data directory and every runner root are created first.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	home, err := cfg.RequireHome()
	if err != nil {
		return nil, err
	}

	o := options{
		fs:     afero.NewOsFs(),
		env:    runtime.ChainEnv{runtime.OSEnv{}, runtime.MapEnv(cfg.Env)},
		policy: discovery.PolicyFailOnAmbiguity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	registry := runner.NewRegistry(home)
	if err := runner.EnsureDirectories(o.fs, registry); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation(OperationPrepareHome).
			WithResource(home).
			WithSuggestion("Check that you can write to the home directory").
			Wrap(err).
			BuildError()
	}

	split, err := runtime.SplitMode(cfg.Alias.Split).Splitter()
	if err != nil {
		return nil, err
	}

	probe := fsprobe.New(o.fs)
	dispatcherOpts := []runtime.DispatcherOption{
		runtime.WithProbe(probe),
		runtime.WithEnv(o.env),
		runtime.WithSplitter(split),
	}
	if o.spawner != nil {
		dispatcherOpts = append(dispatcherOpts, runtime.WithSpawner(o.spawner))
	}
	if o.newID != nil {
		dispatcherOpts = append(dispatcherOpts, runtime.WithIDGenerator(o.newID))
	}

	return &Service{
		registry:   registry,
		discovery:  discovery.New(probe, registry, discovery.WithPolicy(o.policy)),
		dispatcher: runtime.NewDispatcher(dispatcherOpts...),
	}, nil
}

// Home returns the home directory the service runs from.
func (s *Service) Home() string { return s.registry.Home() }

// Run resolves args and launches the matching command. When nothing matches
// it lists the options at args instead.
//
// Fatal conditions (ambiguity, missing interpreter, bad alias, spawn failure)
// are returned as errors alongside the classifying Outcome.
func (s *Service) Run(ctx context.Context, args []string) (Outcome, error) {
	return s.resolveThen(ctx, args, func(cmd *discovery.ResolvedCommand, out Outcome) (Outcome, error) {
		result := s.dispatcher.Dispatch(ctx, cmd)
		out.Kind = OutcomeDispatched
		out.Result = result
		return out, result.Error
	})
}

// Plan is Run without the launch: the invocation is built and returned.
func (s *Service) Plan(ctx context.Context, args []string) (Outcome, error) {
	return s.resolveThen(ctx, args, func(cmd *discovery.ResolvedCommand, out Outcome) (Outcome, error) {
		inv, err := s.dispatcher.BuildInvocation(ctx, cmd)
		out.Kind = OutcomePlanned
		if err != nil {
			out.Result = runtime.NewErrorResult(1, err)
			return out, err
		}
		out.Result = &runtime.Result{Invocation: inv}
		return out, nil
	})
}

// List enumerates the options at prefix without resolving a command.
func (s *Service) List(_ context.Context, prefix []string) Outcome {
	out := Outcome{Args: slices.Clone(prefix)}
	entries, found := s.discovery.Enumerate(prefix)
	if !found {
		out.Kind = OutcomeNoMatchInvalid
		return out
	}
	out.Kind = OutcomeOptionsToDisplay
	out.Options = entries
	return out
}

func (s *Service) resolveThen(ctx context.Context, args []string, onMatch func(*discovery.ResolvedCommand, Outcome) (Outcome, error)) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	out := Outcome{Args: slices.Clone(args)}
	if len(args) == 0 {
		return s.List(ctx, nil), nil
	}

	cmd, err := s.discovery.Resolve(args)
	if err != nil {
		if errors.Is(err, discovery.ErrAmbiguousCommand) {
			out.Kind = OutcomeAmbiguousCommand
		}
		return out, err
	}
	if cmd != nil {
		slog.Debug("resolved command", "runner", cmd.Runner.Name, "path", cmd.CommandPath, "args", cmd.RemainingArgs)
		return onMatch(cmd, out)
	}

	return s.List(ctx, args), nil
}
