// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Tree builds runner directory layouts below a home directory.
type Tree struct {
	t    testing.TB
	fs   afero.Fs
	home string
}

// NewTree wraps fs with home as the base for every relative path.
func NewTree(t testing.TB, fs afero.Fs, home string) *Tree {
	t.Helper()
	return &Tree{t: t, fs: fs, home: home}
}

// NewMemTree creates a Tree over a fresh in-memory filesystem rooted at /home.
func NewMemTree(t testing.TB) *Tree {
	t.Helper()
	return NewTree(t, afero.NewMemMapFs(), "/home")
}

// Fs returns the filesystem the tree writes to.
func (tr *Tree) Fs() afero.Fs { return tr.fs }

// Home returns the home directory.
func (tr *Tree) Home() string { return tr.home }

// Path joins elem below the home directory.
func (tr *Tree) Path(elem ...string) string {
	return filepath.Join(append([]string{tr.home}, elem...)...)
}

// Dir creates a directory (and parents) below home.
func (tr *Tree) Dir(elem ...string) *Tree {
	tr.t.Helper()
	path := tr.Path(elem...)
	if err := tr.fs.MkdirAll(path, 0o755); err != nil {
		tr.t.Fatalf("failed to create directory %s: %v", path, err)
	}
	return tr
}

// File writes content to a file below home, creating parents as needed.
// The last element is the file name.
func (tr *Tree) File(content string, elem ...string) *Tree {
	tr.t.Helper()
	path := tr.Path(elem...)
	if err := tr.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tr.t.Fatalf("failed to create directory %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(tr.fs, path, []byte(content), 0o755); err != nil {
		tr.t.Fatalf("failed to write %s: %v", path, err)
	}
	return tr
}

// Roots creates the four runner root directories and the data directory.
func (tr *Tree) Roots() *Tree {
	tr.t.Helper()
	for _, name := range []string{"executables", "python", "commands", "java", "data"} {
		tr.Dir(name)
	}
	return tr
}
