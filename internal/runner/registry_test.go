// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestNewRegistryOrderAndStrategies(t *testing.T) {
	t.Parallel()

	home := filepath.FromSlash("/srv/bs")
	reg := NewRegistry(home)

	tests := []struct {
		name     Name
		wantKind StrategyKind
	}{
		{NameExecutables, KindDirectExecutable},
		{NamePython, KindInterpretedScript},
		{NameCommands, KindCommandAlias},
		{NameJava, KindArchiveRuntime},
	}

	descriptors := reg.Descriptors()
	if len(descriptors) != len(tests) {
		t.Fatalf("len(Descriptors()) = %d, want %d", len(descriptors), len(tests))
	}

	for i, tt := range tests {
		d := descriptors[i]
		if d.Name != tt.name {
			t.Errorf("descriptor[%d].Name = %q, want %q", i, d.Name, tt.name)
		}
		if d.Strategy.Kind() != tt.wantKind {
			t.Errorf("descriptor[%d].Strategy.Kind() = %v, want %v", i, d.Strategy.Kind(), tt.wantKind)
		}
		if want := filepath.Join(home, string(tt.name)); d.Root != want {
			t.Errorf("descriptor[%d].Root = %q, want %q", i, d.Root, want)
		}
	}
}

func TestStrategyEnvBindings(t *testing.T) {
	t.Parallel()

	python, err := StrategyFor(NamePython)
	if err != nil {
		t.Fatalf("StrategyFor(python) error = %v", err)
	}
	if got := python.(InterpretedScript).InterpreterEnv; got != EnvPython {
		t.Errorf("python InterpreterEnv = %q, want %q", got, EnvPython)
	}

	java, err := StrategyFor(NameJava)
	if err != nil {
		t.Fatalf("StrategyFor(java) error = %v", err)
	}
	archive := java.(ArchiveRuntime)
	if archive.LauncherEnv != EnvJava || archive.LaunchFlag != JarLaunchFlag {
		t.Errorf("java strategy = %+v, want env %q flag %q", archive, EnvJava, JarLaunchFlag)
	}
}

func TestNameValidate(t *testing.T) {
	t.Parallel()

	for _, n := range Names() {
		if err := n.Validate(); err != nil {
			t.Errorf("Name(%q).Validate() = %v, want nil", n, err)
		}
	}

	err := Name("ruby").Validate()
	if err == nil {
		t.Fatal("Name(ruby).Validate() = nil, want error")
	}
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("error does not wrap ErrInvalidName: %v", err)
	}

	if _, err := StrategyFor("ruby"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("StrategyFor(ruby) error = %v, want ErrInvalidName", err)
	}
}

func TestRegistryDescriptorsIsACopy(t *testing.T) {
	t.Parallel()

	reg := NewRegistry("/srv/bs")
	ds := reg.Descriptors()
	ds[0].Root = "/tampered"

	if d, _ := reg.Get(NameExecutables); d.Root == "/tampered" {
		t.Error("mutating Descriptors() result changed the registry")
	}
}

func TestEnsureDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	reg := NewRegistry("/srv/bs")

	if err := EnsureDirectories(fs, reg); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	want := []string{reg.DataDir()}
	for _, d := range reg.Descriptors() {
		want = append(want, d.Root)
	}
	for _, dir := range want {
		ok, err := afero.DirExists(fs, dir)
		if err != nil || !ok {
			t.Errorf("directory %s not created (exists=%v, err=%v)", dir, ok, err)
		}
	}

	// Idempotent on a second run.
	if err := EnsureDirectories(fs, reg); err != nil {
		t.Errorf("second EnsureDirectories() error = %v", err)
	}
}

func TestEnsureDirectoriesReadOnlyFs(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := EnsureDirectories(fs, NewRegistry("/srv/bs")); err == nil {
		t.Error("EnsureDirectories() on a read-only fs should fail")
	}
}

func TestStrategyKindString(t *testing.T) {
	t.Parallel()

	tests := map[StrategyKind]string{
		KindDirectExecutable:  "executable",
		KindInterpretedScript: "interpreted",
		KindCommandAlias:      "alias",
		KindArchiveRuntime:    "archive",
		StrategyKind(99):      "StrategyKind(99)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("StrategyKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
