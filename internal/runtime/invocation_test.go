// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"slices"
	"testing"
)

func TestInvocation_String(t *testing.T) {
	t.Parallel()

	inv := &Invocation{Program: "echo", Args: []string{"a b", "plain", ""}}
	want := `echo 'a b' plain ''`
	if got := inv.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInvocation_EnvCarriesExecutionID(t *testing.T) {
	t.Parallel()

	inv := &Invocation{ExecutionID: "abc"}
	if got := inv.Env(); !slices.Equal(got, []string{"BS_EXECUTION_ID=abc"}) {
		t.Errorf("Env() = %q", got)
	}
}

func TestInvocation_CloneIsDeep(t *testing.T) {
	t.Parallel()

	inv := &Invocation{Program: "p", Args: []string{"a"}}
	c := inv.Clone()
	c.Args[0] = "changed"
	if inv.Args[0] != "a" {
		t.Errorf("Clone shares Args with original")
	}
}
