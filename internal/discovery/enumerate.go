// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"
	"sort"

	"github.com/bstools/bstools/internal/fsprobe"
)

// Enumerate lists the entries available at prefix across all runners, merged
// and sorted by name. Ties keep registry order.
//
// found is false only when no runner could walk the whole prefix ("invalid
// path"). A found prefix with no children returns an empty, non-nil slice
// ("empty directory"). An empty prefix lists every runner root and is always
// found.
func (d *Discovery) Enumerate(prefix []string) (entries []fsprobe.Entry, found bool) {
	entries = []fsprobe.Entry{}

	if len(prefix) == 0 {
		for _, desc := range d.registry.Descriptors() {
			entries = append(entries, d.probe.List(desc.Root)...)
		}
		sortEntries(entries)
		return entries, true
	}

	for _, desc := range d.registry.Descriptors() {
		path, ok := walkPrefix(d.probe, desc.Root, prefix)
		if !ok {
			continue
		}
		found = true
		children := d.probe.List(path)
		slog.Debug("runner contributes options", "runner", desc.Name, "path", path, "count", len(children))
		entries = append(entries, children...)
	}

	if !found {
		return nil, false
	}

	sortEntries(entries)
	return entries, true
}

// Names returns the entry names in order.
func Names(entries []fsprobe.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func sortEntries(entries []fsprobe.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
