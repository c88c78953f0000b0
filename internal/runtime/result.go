// SPDX-License-Identifier: MPL-2.0

package runtime

// Result is the outcome of dispatching one command.
type Result struct {
	// ExitCode is the child's exit status, or ExitSpawnFailed.
	ExitCode ExitCode
	// Error is set when the invocation could not be built or started.
	// A child exiting non-zero is not an error.
	Error error
	// Invocation is what was (or would have been) launched. Nil when the
	// invocation could not be built.
	Invocation *Invocation
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than dispatch failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// Success returns true if the command ran and exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}
