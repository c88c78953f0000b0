// SPDX-License-Identifier: MPL-2.0

package runtime

import "os"

type (
	// EnvLookup reads environment variables. Strategies that need an
	// interpreter or launcher path receive one instead of touching the
	// process environment.
	EnvLookup interface {
		LookupEnv(name string) (string, bool)
	}

	// OSEnv reads the process environment.
	OSEnv struct{}

	// MapEnv serves lookups from a map.
	MapEnv map[string]string

	// ChainEnv tries each lookup in order and returns the first non-empty
	// value. An empty value falls through to the next lookup.
	ChainEnv []EnvLookup
)

// LookupEnv implements EnvLookup.
func (OSEnv) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// LookupEnv implements EnvLookup.
func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// LookupEnv implements EnvLookup.
func (c ChainEnv) LookupEnv(name string) (string, bool) {
	for _, env := range c {
		if env == nil {
			continue
		}
		if v, ok := env.LookupEnv(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
