// SPDX-License-Identifier: MPL-2.0

package fsprobe

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

const (
	// KindAbsent means nothing exists at the path.
	KindAbsent Kind = iota
	// KindFile means the path exists and is not a directory.
	KindFile
	// KindDirectory means the path exists and is a directory.
	KindDirectory
)

type (
	// Kind classifies what a path points at.
	Kind int

	// Entry is a point-in-time snapshot of one directory child.
	// It is recomputed on every query and never cached.
	Entry struct {
		// Name is the base name of the entry.
		Name string
		// Path is the full path of the entry.
		Path string
		// IsDirectory reports whether the entry is a directory.
		IsDirectory bool
	}

	// Probe inspects a filesystem without modifying it.
	Probe struct {
		fs afero.Fs
	}
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New creates a probe over fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Probe {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Probe{fs: fs}
}

// NewOS creates a probe over the OS filesystem.
func NewOS() *Probe {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (p *Probe) Fs() afero.Fs {
	return p.fs
}

// Kind reports whether path is absent, a file, or a directory.
// Stat errors other than "does not exist" (permission denied, a file used as
// a path prefix) are treated as absent as well.
func (p *Probe) Kind(path string) Kind {
	info, err := p.fs.Stat(path)
	if err != nil {
		return KindAbsent
	}
	if info.IsDir() {
		return KindDirectory
	}
	return KindFile
}

// Entry returns the entry at path, or false if nothing exists there.
func (p *Probe) Entry(path string) (Entry, bool) {
	kind := p.Kind(path)
	if kind == KindAbsent {
		return Entry{}, false
	}
	return Entry{
		Name:        filepath.Base(path),
		Path:        path,
		IsDirectory: kind == KindDirectory,
	}, true
}

// List returns the children of the directory at path sorted by name.
// A missing path, a non-directory path, or an unreadable directory yields an
// empty slice.
func (p *Probe) List(path string) []Entry {
	if p.Kind(path) != KindDirectory {
		return []Entry{}
	}

	infos, err := afero.ReadDir(p.fs, path)
	if err != nil {
		return []Entry{}
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		childPath := filepath.Join(path, info.Name())
		entries = append(entries, Entry{
			Name:        info.Name(),
			Path:        childPath,
			IsDirectory: p.Kind(childPath) == KindDirectory,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// ReadFile returns the contents of the file at path.
func (p *Probe) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
