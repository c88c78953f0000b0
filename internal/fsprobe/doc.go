// SPDX-License-Identifier: MPL-2.0

// Package fsprobe answers the two filesystem questions the resolver asks:
// what kind of entry lives at a path, and what the children of a directory are.
//
// All operations are total. A missing path is reported as KindAbsent and
// listing a missing or non-directory path yields no entries; neither is an error.
// The probe works on an afero.Fs so callers can swap the OS filesystem for an
// in-memory one.
package fsprobe
