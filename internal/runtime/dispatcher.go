// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bstools/bstools/internal/discovery"
	"github.com/bstools/bstools/internal/fsprobe"
	"github.com/bstools/bstools/internal/runner"
)

type (
	// Dispatcher builds and launches invocations for resolved commands.
	Dispatcher struct {
		probe   *fsprobe.Probe
		env     EnvLookup
		spawner Spawner
		split   Splitter
		newID   func() string
	}

	// DispatcherOption configures a Dispatcher.
	DispatcherOption func(*Dispatcher)
)

// WithProbe sets the filesystem alias files are read from.
func WithProbe(p *fsprobe.Probe) DispatcherOption {
	return func(d *Dispatcher) { d.probe = p }
}

// WithEnv sets where interpreter and launcher paths are looked up.
func WithEnv(env EnvLookup) DispatcherOption {
	return func(d *Dispatcher) { d.env = env }
}

// WithSpawner replaces the process launcher.
func WithSpawner(s Spawner) DispatcherOption {
	return func(d *Dispatcher) { d.spawner = s }
}

// WithSplitter sets the alias line splitter.
func WithSplitter(s Splitter) DispatcherOption {
	return func(d *Dispatcher) { d.split = s }
}

// WithIDGenerator overrides how execution IDs are generated.
func WithIDGenerator(gen func() string) DispatcherOption {
	return func(d *Dispatcher) { d.newID = gen }
}

// NewDispatcher creates a Dispatcher. Without options it reads the OS
// filesystem and environment, splits aliases naively and spawns real
// processes.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		probe:   fsprobe.NewOS(),
		env:     OSEnv{},
		spawner: NewExecSpawner(),
		split:   splitNaive,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// BuildInvocation computes the program and argv for cmd without starting it.
func (d *Dispatcher) BuildInvocation(ctx context.Context, cmd *discovery.ResolvedCommand) (*Invocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv := &Invocation{
		ExecutionID: d.newID(),
		Runner:      cmd.Runner.Name,
		CommandPath: cmd.CommandPath,
	}

	switch s := cmd.Runner.Strategy.(type) {
	case runner.DirectExecutable:
		inv.Program = cmd.CommandPath
		inv.Args = cmd.Args()

	case runner.InterpretedScript:
		interpreter, err := d.requireEnv(s.InterpreterEnv, cmd.Runner.Name)
		if err != nil {
			return nil, err
		}
		inv.Program = interpreter
		inv.Args = append([]string{cmd.CommandPath}, cmd.RemainingArgs...)

	case runner.CommandAlias:
		contents, err := d.probe.ReadFile(cmd.CommandPath)
		if err != nil {
			return nil, err
		}
		template, err := ParseAlias(cmd.CommandPath, contents)
		if err != nil {
			return nil, err
		}
		expanded, err := ExpandAlias(template, cmd.RemainingArgs, d.split)
		if err != nil {
			return nil, err
		}
		inv.Program = expanded.Program
		inv.Args = expanded.Args

	case runner.ArchiveRuntime:
		launcher, err := d.requireEnv(s.LauncherEnv, cmd.Runner.Name)
		if err != nil {
			return nil, err
		}
		inv.Program = launcher
		inv.Args = append([]string{s.LaunchFlag, cmd.CommandPath}, cmd.RemainingArgs...)

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedStrategy, cmd.Runner.Strategy)
	}

	inv.Strategy = cmd.Runner.Strategy.Kind()

	slog.Debug("built invocation",
		"runner", inv.Runner,
		"strategy", inv.Strategy,
		"program", inv.Program,
		"args", inv.Args,
		"execution_id", inv.ExecutionID)
	return inv, nil
}

// Dispatch builds the invocation for cmd and runs it to completion.
// A child exiting non-zero yields its exit code without an error.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd *discovery.ResolvedCommand) *Result {
	inv, err := d.BuildInvocation(ctx, cmd)
	if err != nil {
		return NewErrorResult(1, err)
	}

	code, err := d.spawner.Spawn(ctx, inv)
	if err != nil {
		if errors.Is(err, ErrSpawnFailed) {
			code = ExitSpawnFailed
		}
		return &Result{ExitCode: code, Error: err, Invocation: inv}
	}

	slog.Debug("process exited", "program", inv.Program, "exit_code", code)
	return &Result{ExitCode: code, Invocation: inv}
}

// requireEnv returns the value of a mandatory variable. Unset and empty
// values are both rejected.
func (d *Dispatcher) requireEnv(name string, owner runner.Name) (string, error) {
	value, ok := d.env.LookupEnv(name)
	if !ok || value == "" {
		return "", &MissingEnvError{Name: name, Purpose: string(owner) + " executable to use when executing commands"}
	}
	return value, nil
}
