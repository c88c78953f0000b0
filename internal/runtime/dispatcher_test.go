// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"slices"
	"testing"

	"mvdan.cc/sh/v3/expand"

	"github.com/bstools/bstools/internal/discovery"
	"github.com/bstools/bstools/internal/fsprobe"
	"github.com/bstools/bstools/internal/runner"
	"github.com/bstools/bstools/internal/testutil"
)

type recordingSpawner struct {
	calls []*Invocation
	code  ExitCode
	err   error
}

func (s *recordingSpawner) Spawn(_ context.Context, inv *Invocation) (ExitCode, error) {
	s.calls = append(s.calls, inv.Clone())
	return s.code, s.err
}

func resolved(t *testing.T, reg *runner.Registry, name runner.Name, path string, args ...string) *discovery.ResolvedCommand {
	t.Helper()
	desc, ok := reg.Get(name)
	if !ok {
		t.Fatalf("runner %s not registered", name)
	}
	return &discovery.ResolvedCommand{CommandPath: path, RemainingArgs: args, Runner: desc}
}

func newTestDispatcher(tr *testutil.Tree, env MapEnv, sp Spawner) *Dispatcher {
	return NewDispatcher(
		WithProbe(fsprobe.New(tr.Fs())),
		WithEnv(env),
		WithSpawner(sp),
		WithIDGenerator(func() string { return "exec-1" }),
	)
}

func TestBuildInvocation(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots().
		File("echo %s and %s", "commands", "say").
		File("print()", "python", "scripts", "deploy")
	reg := runner.NewRegistry(tr.Home())
	env := MapEnv{runner.EnvPython: "/usr/bin/python3", runner.EnvJava: "/usr/bin/java"}

	tests := []struct {
		name        string
		cmd         *discovery.ResolvedCommand
		wantProgram string
		wantArgs    []string
		wantKind    runner.StrategyKind
	}{
		{
			name:        "executable passes args through",
			cmd:         resolved(t, reg, runner.NameExecutables, "/home/executables/hello", "a", "b"),
			wantProgram: "/home/executables/hello",
			wantArgs:    []string{"a", "b"},
			wantKind:    runner.KindDirectExecutable,
		},
		{
			name:        "interpreter prefixes script path",
			cmd:         resolved(t, reg, runner.NamePython, "/home/python/scripts/deploy", "--force"),
			wantProgram: "/usr/bin/python3",
			wantArgs:    []string{"/home/python/scripts/deploy", "--force"},
			wantKind:    runner.KindInterpretedScript,
		},
		{
			name:        "interpreter without extra args",
			cmd:         resolved(t, reg, runner.NamePython, "/home/python/scripts/deploy"),
			wantProgram: "/usr/bin/python3",
			wantArgs:    []string{"/home/python/scripts/deploy"},
			wantKind:    runner.KindInterpretedScript,
		},
		{
			name:        "alias expands placeholders",
			cmd:         resolved(t, reg, runner.NameCommands, "/home/commands/say", "a", "b", "c"),
			wantProgram: "echo",
			wantArgs:    []string{"a", "and", "b", "c"},
			wantKind:    runner.KindCommandAlias,
		},
		{
			name:        "archive adds launch flag",
			cmd:         resolved(t, reg, runner.NameJava, "/home/java/tool.jar", "x"),
			wantProgram: "/usr/bin/java",
			wantArgs:    []string{"-jar", "/home/java/tool.jar", "x"},
			wantKind:    runner.KindArchiveRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDispatcher(tr, env, &recordingSpawner{})
			inv, err := d.BuildInvocation(context.Background(), tt.cmd)
			if err != nil {
				t.Fatalf("BuildInvocation() error: %v", err)
			}
			if inv.Program != tt.wantProgram {
				t.Errorf("Program = %q, want %q", inv.Program, tt.wantProgram)
			}
			if !slices.Equal(inv.Args, tt.wantArgs) {
				t.Errorf("Args = %q, want %q", inv.Args, tt.wantArgs)
			}
			if inv.Strategy != tt.wantKind {
				t.Errorf("Strategy = %s, want %s", inv.Strategy, tt.wantKind)
			}
			if inv.ExecutionID != "exec-1" {
				t.Errorf("ExecutionID = %q", inv.ExecutionID)
			}
		})
	}
}

func TestDispatch_MissingEnv(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots()
	reg := runner.NewRegistry(tr.Home())

	tests := []struct {
		name    string
		cmd     *discovery.ResolvedCommand
		env     MapEnv
		wantVar string
	}{
		{"python unset", resolved(t, reg, runner.NamePython, "/home/python/x"), MapEnv{}, runner.EnvPython},
		{"python empty", resolved(t, reg, runner.NamePython, "/home/python/x"), MapEnv{runner.EnvPython: ""}, runner.EnvPython},
		{"java unset", resolved(t, reg, runner.NameJava, "/home/java/x.jar"), MapEnv{runner.EnvPython: "py"}, runner.EnvJava},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sp := &recordingSpawner{}
			result := newTestDispatcher(tr, tt.env, sp).Dispatch(context.Background(), tt.cmd)

			var envErr *MissingEnvError
			if !errors.As(result.Error, &envErr) {
				t.Fatalf("Error = %v, want *MissingEnvError", result.Error)
			}
			if envErr.Name != tt.wantVar {
				t.Errorf("Name = %q, want %q", envErr.Name, tt.wantVar)
			}
			if len(sp.calls) != 0 {
				t.Errorf("spawner called %d times, want 0", len(sp.calls))
			}
			if result.Invocation != nil {
				t.Errorf("Invocation = %+v, want nil", result.Invocation)
			}
		})
	}
}

func TestDispatch_AliasFailuresDoNotSpawn(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots().
		File("run %s %s", "commands", "run").
		File("ls\npwd\n", "commands", "multi")
	reg := runner.NewRegistry(tr.Home())

	tests := []struct {
		name    string
		cmd     *discovery.ResolvedCommand
		wantErr error
	}{
		{"missing argument", resolved(t, reg, runner.NameCommands, tr.Path("commands", "run"), "x"), ErrMissingAliasArgument},
		{"multi-line file", resolved(t, reg, runner.NameCommands, tr.Path("commands", "multi"), "a", "b"), ErrMultiLineAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sp := &recordingSpawner{}
			result := newTestDispatcher(tr, MapEnv{}, sp).Dispatch(context.Background(), tt.cmd)
			if !errors.Is(result.Error, tt.wantErr) {
				t.Fatalf("Error = %v, want %v", result.Error, tt.wantErr)
			}
			if len(sp.calls) != 0 {
				t.Errorf("spawner called %d times, want 0", len(sp.calls))
			}
		})
	}
}

func TestDispatch_ShellSplitCommandSubstitutionDoesNotSpawn(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots().
		File("echo $(id) %s", "commands", "who")
	reg := runner.NewRegistry(tr.Home())
	sp := &recordingSpawner{}

	d := NewDispatcher(
		WithProbe(fsprobe.New(tr.Fs())),
		WithEnv(MapEnv{}),
		WithSpawner(sp),
		WithSplitter(splitShell),
	)
	result := d.Dispatch(context.Background(), resolved(t, reg, runner.NameCommands, tr.Path("commands", "who"), "me"))

	var cmdErr expand.UnexpectedCommandError
	if !errors.As(result.Error, &cmdErr) {
		t.Fatalf("Error = %v, want expand.UnexpectedCommandError", result.Error)
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
	if len(sp.calls) != 0 {
		t.Errorf("spawner called %d times, want 0", len(sp.calls))
	}
}

func TestDispatch_PropagatesChildExitCode(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots()
	reg := runner.NewRegistry(tr.Home())
	sp := &recordingSpawner{code: 3}

	result := newTestDispatcher(tr, MapEnv{}, sp).
		Dispatch(context.Background(), resolved(t, reg, runner.NameExecutables, "/home/executables/x", "y"))

	if result.Error != nil {
		t.Fatalf("Error = %v", result.Error)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if len(sp.calls) != 1 {
		t.Fatalf("spawner called %d times, want 1", len(sp.calls))
	}
	if got := sp.calls[0].Argv(); !slices.Equal(got, []string{"/home/executables/x", "y"}) {
		t.Errorf("Argv() = %q", got)
	}
}

func TestDispatch_SpawnFailure(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots()
	reg := runner.NewRegistry(tr.Home())
	sp := &recordingSpawner{
		code: ExitSpawnFailed,
		err:  &SpawnError{Program: "/home/executables/x", Err: errors.New("exec format error")},
	}

	result := newTestDispatcher(tr, MapEnv{}, sp).
		Dispatch(context.Background(), resolved(t, reg, runner.NameExecutables, "/home/executables/x"))

	if !errors.Is(result.Error, ErrSpawnFailed) {
		t.Fatalf("Error = %v, want ErrSpawnFailed", result.Error)
	}
	if result.ExitCode != ExitSpawnFailed {
		t.Errorf("ExitCode = %d, want %d", result.ExitCode, ExitSpawnFailed)
	}
	if result.Invocation == nil {
		t.Error("Invocation should be reported for spawn failures")
	}
}

func TestBuildInvocation_CancelledContext(t *testing.T) {
	t.Parallel()

	tr := testutil.NewMemTree(t).Roots()
	reg := runner.NewRegistry(tr.Home())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestDispatcher(tr, MapEnv{}, &recordingSpawner{}).
		BuildInvocation(ctx, resolved(t, reg, runner.NameExecutables, "/home/executables/x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
