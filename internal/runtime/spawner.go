// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

type (
	// Spawner starts an invocation and waits for it to exit.
	Spawner interface {
		Spawn(ctx context.Context, inv *Invocation) (ExitCode, error)
	}

	// ExecSpawner runs invocations as child processes that inherit the
	// standard streams and environment of the current process.
	ExecSpawner struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// SpawnerFunc adapts a function to the Spawner interface.
	SpawnerFunc func(ctx context.Context, inv *Invocation) (ExitCode, error)
)

// NewExecSpawner creates a spawner wired to the process standard streams.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Spawn implements Spawner.
//
// The child is not killed when ctx is cancelled after it started. It shares
// the terminal's process group and receives interrupts directly, so it
// decides how to shut down.
func (s *ExecSpawner) Spawn(ctx context.Context, inv *Invocation) (ExitCode, error) {
	if err := ctx.Err(); err != nil {
		return ExitSpawnFailed, &SpawnError{Program: inv.Program, Err: err}
	}

	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Env = append(os.Environ(), inv.Env()...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Start(); err != nil {
		return ExitSpawnFailed, &SpawnError{Program: inv.Program, Err: err}
	}
	slog.Debug("started process", "program", inv.Program, "pid", cmd.Process.Pid, "execution_id", inv.ExecutionID)

	return extractExitCode(inv.Program, cmd.Wait())
}

// Spawn implements Spawner.
func (f SpawnerFunc) Spawn(ctx context.Context, inv *Invocation) (ExitCode, error) {
	return f(ctx, inv)
}

// extractExitCode maps a Wait error to the child's exit code. A process
// killed by a signal reports no usable code and is treated as a failure.
func extractExitCode(program string, err error) (ExitCode, error) {
	if err == nil {
		return ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := ExitCode(exitErr.ExitCode())
		if validateErr := code.Validate(); validateErr != nil {
			return 1, fmt.Errorf("%s terminated abnormally (%s): %w", program, exitErr, validateErr)
		}
		return code, nil
	}

	return 1, fmt.Errorf("failed waiting for %s: %w", program, err)
}
