// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and the catalog of Markdown help
// pages shown when bs cannot run a command.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions. The catalog maps each failure class to an Id whose Markdown is
// rendered with glamour by the CLI.
package issue
