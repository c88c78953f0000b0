// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"

	"github.com/spf13/afero"
)

func TestTree_FileCreatesParents(t *testing.T) {
	t.Parallel()

	tr := NewMemTree(t).File("print('hi')", "python", "scripts", "deploy")

	data, err := afero.ReadFile(tr.Fs(), "/home/python/scripts/deploy")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "print('hi')" {
		t.Errorf("content = %q, want %q", data, "print('hi')")
	}

	isDir, err := afero.IsDir(tr.Fs(), "/home/python/scripts")
	if err != nil || !isDir {
		t.Errorf("IsDir(/home/python/scripts) = %v, %v; want true, nil", isDir, err)
	}
}

func TestTree_Roots(t *testing.T) {
	t.Parallel()

	tr := NewMemTree(t).Roots()
	for _, name := range []string{"executables", "python", "commands", "java", "data"} {
		if ok, _ := afero.DirExists(tr.Fs(), tr.Path(name)); !ok {
			t.Errorf("expected %s to exist", tr.Path(name))
		}
	}
}

func TestMustSetenv_Restores(t *testing.T) {
	const key = "BSTOOLS_TESTUTIL_PROBE"

	restore := MustUnsetenv(t, key)
	cleanup := MustSetenv(t, key, "value")
	cleanup()
	restore()

	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s should be unset after cleanup", key)
	}
}
