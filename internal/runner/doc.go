// SPDX-License-Identifier: MPL-2.0

// Package runner defines the fixed, ordered set of runners bs resolves
// commands from.
//
// A runner pairs a directory under the bs home with an execution strategy.
// Strategies form a closed set (DirectExecutable, InterpretedScript,
// CommandAlias, ArchiveRuntime); the dispatcher switches on the concrete type
// so adding a strategy is a compiler-visible change.
package runner
