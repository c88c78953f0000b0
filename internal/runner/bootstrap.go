// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// EnsureDirectories creates the data directory and every runner root.
// It must run before resolution starts; resolution itself never writes.
func EnsureDirectories(fs afero.Fs, r *Registry) error {
	dirs := make([]string, 0, r.Len()+1)
	dirs = append(dirs, r.DataDir())
	for _, d := range r.descriptors {
		dirs = append(dirs, d.Root)
	}

	for _, dir := range dirs {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Debug("ensured runner directory", "path", dir)
	}
	return nil
}
