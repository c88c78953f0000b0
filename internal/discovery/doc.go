// SPDX-License-Identifier: MPL-2.0

// Package discovery walks runner directory trees to turn CLI arguments into a
// command file, and lists what is available at a given argument depth.
//
// This package intentionally combines two related concerns:
//   - Enumeration: listing the merged, sorted entries under an argument prefix
//   - Resolution: consuming arguments as path segments until a command file is hit
//
// Both walk the same trees with the same segment rules, so they share the
// per-runner walker in walk.go.
//
// File organization:
//   - discovery.go: Discovery type, options and policies
//   - walk.go: per-runner path walking
//   - enumerate.go: option enumeration across runners
//   - resolve.go: command resolution and ResolvedCommand
//   - resolution.go: the ambiguity state machine
//   - errors.go: AmbiguousCommandError
package discovery
