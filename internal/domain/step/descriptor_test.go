package step

import (
	"errors"
	"testing"
)

func TestNewID_Valid(t *testing.T) {
	valid := []string{
		"package-install:build-deps",
		"env-var:no_proxy",
		"locale-set:en_US",
		"git-remote:upstream",
		"simple",
		"a/b:c-d_e",
	}

	for _, value := range valid {
		id, err := NewID(value)
		if err != nil {
			t.Errorf("NewID(%q) error = %v, want nil", value, err)
		}
		if id.String() != value {
			t.Errorf("NewID(%q).String() = %q", value, id.String())
		}
	}
}

func TestNewID_TrimsWhitespace(t *testing.T) {
	id, err := NewID("  pkg:git  ")
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	if id.String() != "pkg:git" {
		t.Errorf("String() = %q, want %q", id.String(), "pkg:git")
	}
}

func TestNewID_Empty(t *testing.T) {
	for _, value := range []string{"", "   "} {
		_, err := NewID(value)
		if !errors.Is(err, ErrEmptyID) {
			t.Errorf("NewID(%q) error = %v, want ErrEmptyID", value, err)
		}
	}
}

func TestNewID_InvalidFormat(t *testing.T) {
	invalid := []string{
		":leading-colon",
		"trailing-colon:",
		"has space",
		"-leading-hyphen",
		"a::b",
		"tab\tchar",
	}

	for _, value := range invalid {
		_, err := NewID(value)
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("NewID(%q) error = %v, want ErrInvalidID", value, err)
		}
	}
}

func TestID_Equals(t *testing.T) {
	a := MustNewID("pkg:git")
	b := MustNewID("pkg:git")
	c := MustNewID("pkg:curl")

	if !a.Equals(b) {
		t.Error("identical ids should be equal")
	}
	if a.Equals(c) {
		t.Error("different ids should not be equal")
	}
}

func TestID_IsZero(t *testing.T) {
	var zero ID
	if !zero.IsZero() {
		t.Error("zero-value ID should report IsZero")
	}
	if MustNewID("pkg:git").IsZero() {
		t.Error("constructed ID should not report IsZero")
	}
}

func TestNewDescriptor(t *testing.T) {
	d, err := NewDescriptor("pkg:build", KindPackageInstall, map[string]string{
		"packages": "git curl",
	})
	if err != nil {
		t.Fatalf("NewDescriptor() error = %v", err)
	}

	if d.ID().String() != "pkg:build" {
		t.Errorf("ID() = %q", d.ID().String())
	}
	if d.Kind() != KindPackageInstall {
		t.Errorf("Kind() = %q", d.Kind())
	}
	if d.Param("packages") != "git curl" {
		t.Errorf("Param(packages) = %q", d.Param("packages"))
	}
	if d.ContainsSecret() {
		t.Error("new descriptor should not carry a secret by default")
	}
}

func TestNewDescriptor_InvalidID(t *testing.T) {
	_, err := NewDescriptor("", KindEnvVar, nil)
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("error = %v, want ErrEmptyID", err)
	}
}

func TestNewDescriptor_UnknownKind(t *testing.T) {
	_, err := NewDescriptor("x:y", Kind("reboot"), nil)

	var kindErr *UnknownKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("error = %v, want *UnknownKindError", err)
	}
	if kindErr.Value != "reboot" {
		t.Errorf("Value = %q, want %q", kindErr.Value, "reboot")
	}
}

func TestNewDescriptor_CopiesParams(t *testing.T) {
	params := map[string]string{"name": "PATH"}
	d, err := NewDescriptor("env:path", KindEnvVar, params)
	if err != nil {
		t.Fatalf("NewDescriptor() error = %v", err)
	}

	params["name"] = "MUTATED"
	if d.Param("name") != "PATH" {
		t.Error("descriptor should not observe caller mutation of params")
	}
}

func TestDescriptor_HasParam(t *testing.T) {
	d, _ := NewDescriptor("env:x", KindEnvVar, map[string]string{
		"name":  "X",
		"value": "",
	})

	if !d.HasParam("name") {
		t.Error("HasParam(name) = false, want true")
	}
	if d.HasParam("value") {
		t.Error("HasParam on empty value should be false")
	}
	if d.HasParam("missing") {
		t.Error("HasParam on absent key should be false")
	}
}

func TestDescriptor_WithDependsOn(t *testing.T) {
	d, _ := NewDescriptor("env:x", KindEnvVar, map[string]string{"name": "X"})
	dep := MustNewID("pkg:base")

	with := d.WithDependsOn(dep)

	if len(d.DependsOn()) != 0 {
		t.Error("WithDependsOn should not mutate the receiver")
	}
	deps := with.DependsOn()
	if len(deps) != 1 || !deps[0].Equals(dep) {
		t.Errorf("DependsOn() = %v", deps)
	}

	// Returned slice is a copy.
	deps[0] = MustNewID("other")
	if !with.DependsOn()[0].Equals(dep) {
		t.Error("mutating the returned slice should not reach the descriptor")
	}
}

func TestDescriptor_WithSecret(t *testing.T) {
	d, _ := NewDescriptor("remote:origin", KindGitRemote, nil)

	with := d.WithSecret()

	if d.ContainsSecret() {
		t.Error("WithSecret should not mutate the receiver")
	}
	if !with.ContainsSecret() {
		t.Error("WithSecret copy should carry the secret flag")
	}
}

func TestNewSet(t *testing.T) {
	a, _ := NewDescriptor("pkg:base", KindPackageInstall, map[string]string{"packages": "git"})
	b, _ := NewDescriptor("env:path", KindEnvVar, map[string]string{"name": "PATH"})
	b = b.WithDependsOn(a.ID())

	set, err := NewSet([]Descriptor{a, b})
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}

	got, ok := set.Get(a.ID())
	if !ok {
		t.Fatal("Get() should find a declared descriptor")
	}
	if !got.ID().Equals(a.ID()) {
		t.Errorf("Get() returned wrong descriptor: %s", got.ID())
	}

	if _, ok := set.Get(MustNewID("nope")); ok {
		t.Error("Get() should miss for an undeclared id")
	}
}

func TestNewSet_PreservesDeclarationOrder(t *testing.T) {
	a, _ := NewDescriptor("c", KindEnvVar, map[string]string{"name": "C"})
	b, _ := NewDescriptor("a", KindEnvVar, map[string]string{"name": "A"})
	c, _ := NewDescriptor("b", KindEnvVar, map[string]string{"name": "B"})

	set, err := NewSet([]Descriptor{a, b, c})
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}

	want := []string{"c", "a", "b"}
	for i, d := range set.Descriptors() {
		if d.ID().String() != want[i] {
			t.Errorf("Descriptors()[%d] = %s, want %s", i, d.ID(), want[i])
		}
	}
}

func TestNewSet_DuplicateID(t *testing.T) {
	a, _ := NewDescriptor("env:x", KindEnvVar, map[string]string{"name": "X"})
	b, _ := NewDescriptor("env:x", KindEnvVar, map[string]string{"name": "Y"})

	_, err := NewSet([]Descriptor{a, b})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("error = %v, want ErrDuplicateID", err)
	}
}

func TestNewSet_UnknownDependency(t *testing.T) {
	a, _ := NewDescriptor("env:x", KindEnvVar, map[string]string{"name": "X"})
	a = a.WithDependsOn(MustNewID("ghost"))

	_, err := NewSet([]Descriptor{a})
	if !errors.Is(err, ErrUnknownDependency) {
		t.Errorf("error = %v, want ErrUnknownDependency", err)
	}
}

func TestNewSet_SecretRequired(t *testing.T) {
	remote, _ := NewDescriptor("remote:origin", KindGitRemote, map[string]string{
		"remote": "origin",
	})

	_, err := NewSet([]Descriptor{remote})
	if !errors.Is(err, ErrSecretRequired) {
		t.Errorf("error = %v, want ErrSecretRequired", err)
	}

	_, err = NewSet([]Descriptor{remote.WithSecret()})
	if err != nil {
		t.Errorf("flagged remote should validate, got %v", err)
	}
}
