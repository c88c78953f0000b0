// SPDX-License-Identifier: MPL-2.0

package runtime

import "testing"

func TestChainEnv(t *testing.T) {
	t.Parallel()

	env := ChainEnv{
		nil,
		MapEnv{"A": "first", "B": ""},
		MapEnv{"A": "second", "B": "fallback"},
	}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"A", "first", true},
		{"B", "fallback", true},
		{"C", "", false},
	}

	for _, tt := range tests {
		got, ok := env.LookupEnv(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LookupEnv(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOSEnv(t *testing.T) {
	t.Setenv("BSTOOLS_RUNTIME_OSENV", "yes")

	got, ok := OSEnv{}.LookupEnv("BSTOOLS_RUNTIME_OSENV")
	if !ok || got != "yes" {
		t.Errorf("LookupEnv() = %q, %v", got, ok)
	}
}
