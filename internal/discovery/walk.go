// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"path/filepath"
	"strings"

	"github.com/bstools/bstools/internal/fsprobe"
)

type walkResult struct {
	// path is the final walk position.
	path string
	// commandFound is set when a non-directory entry was reached.
	commandFound bool
	// remaining holds the arguments left after the command segment.
	remaining []string
}

// walkCommand consumes args as path segments below root until it reaches a
// non-directory entry. It returns false when a segment is missing or when the
// arguments run out while still inside directories.
func walkCommand(probe *fsprobe.Probe, root string, args []string) (walkResult, bool) {
	current := root
	for i, arg := range args {
		if !validSegment(arg) {
			return walkResult{}, false
		}
		current = filepath.Join(current, arg)

		switch probe.Kind(current) {
		case fsprobe.KindAbsent:
			return walkResult{}, false
		case fsprobe.KindDirectory:
			continue
		default:
			remaining := make([]string, len(args)-i-1)
			copy(remaining, args[i+1:])
			return walkResult{path: current, commandFound: true, remaining: remaining}, true
		}
	}
	return walkResult{}, false
}

// walkPrefix follows every segment of prefix below root and returns the final
// path. Segments may be files; only existence is checked.
func walkPrefix(probe *fsprobe.Probe, root string, prefix []string) (string, bool) {
	current := root
	for _, segment := range prefix {
		if !validSegment(segment) {
			return "", false
		}
		current = filepath.Join(current, segment)
		if probe.Kind(current) == fsprobe.KindAbsent {
			return "", false
		}
	}
	return current, true
}

// validSegment reports whether an argument can name a child of the current
// walk position. Segments that would leave the runner tree never match.
func validSegment(segment string) bool {
	if segment == "" || segment == "." || segment == ".." {
		return false
	}
	return !strings.ContainsAny(segment, `/`+string(filepath.Separator))
}
