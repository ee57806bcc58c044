package plan

import (
	"errors"
	"testing"

	"github.com/tedd-an/rigup/internal/domain/step"
)

func desc(t *testing.T, id string, deps ...string) step.Descriptor {
	t.Helper()
	d, err := step.NewDescriptor(id, step.KindEnvVar, map[string]string{"name": "X"})
	if err != nil {
		t.Fatalf("NewDescriptor(%q) error = %v", id, err)
	}
	ids := make([]step.ID, len(deps))
	for i, dep := range deps {
		ids[i] = step.MustNewID(dep)
	}
	return d.WithDependsOn(ids...)
}

func TestBuildPlan_Empty(t *testing.T) {
	p, err := NewPlanner().BuildPlan(nil)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}
	if !p.IsEmpty() {
		t.Error("plan of no descriptors should be empty")
	}
}

func TestBuildPlan_DependenciesFirst(t *testing.T) {
	descriptors := []step.Descriptor{
		desc(t, "remote", "identity"),
		desc(t, "identity", "pkg"),
		desc(t, "pkg"),
	}

	p, err := NewPlanner().BuildPlan(descriptors)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	want := []string{"pkg", "identity", "remote"}
	got := p.IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBuildPlan_StableTieBreak(t *testing.T) {
	// No edges between these: declaration order must survive.
	descriptors := []step.Descriptor{
		desc(t, "zeta"),
		desc(t, "alpha"),
		desc(t, "mid"),
	}

	p, err := NewPlanner().BuildPlan(descriptors)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	for i, id := range p.IDs() {
		if id != want[i] {
			t.Errorf("IDs()[%d] = %s, want %s (declaration order)", i, id, want[i])
		}
	}
}

func TestBuildPlan_TieBreakAmongReadySteps(t *testing.T) {
	// b and c both depend on a; d is independent and declared last.
	// After a, the frontier is {b, c, d} and must drain in declaration
	// order.
	descriptors := []step.Descriptor{
		desc(t, "a"),
		desc(t, "b", "a"),
		desc(t, "c", "a"),
		desc(t, "d"),
	}

	p, err := NewPlanner().BuildPlan(descriptors)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	want := []string{"a", "b", "c", "d"}
	for i, id := range p.IDs() {
		if id != want[i] {
			t.Errorf("IDs() = %v, want %v", p.IDs(), want)
			break
		}
	}
}

func TestBuildPlan_Deterministic(t *testing.T) {
	descriptors := []step.Descriptor{
		desc(t, "pkg"),
		desc(t, "locale", "pkg"),
		desc(t, "env"),
		desc(t, "identity", "pkg"),
		desc(t, "remote", "identity", "env"),
	}

	planner := NewPlanner()
	first, err := planner.BuildPlan(descriptors)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	for i := 0; i < 20; i++ {
		again, err := planner.BuildPlan(descriptors)
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}
		for j, id := range again.IDs() {
			if id != first.IDs()[j] {
				t.Fatalf("run %d produced different order: %v vs %v", i, again.IDs(), first.IDs())
			}
		}
	}
}

func TestBuildPlan_Cycle(t *testing.T) {
	descriptors := []step.Descriptor{
		desc(t, "a", "b"),
		desc(t, "b", "a"),
	}

	_, err := NewPlanner().BuildPlan(descriptors)
	if !errors.Is(err, ErrCyclicDependency) {
		t.Errorf("error = %v, want ErrCyclicDependency", err)
	}
}

func TestBuildPlan_SelfCycle(t *testing.T) {
	_, err := NewPlanner().BuildPlan([]step.Descriptor{desc(t, "a", "a")})
	if !errors.Is(err, ErrCyclicDependency) {
		t.Errorf("error = %v, want ErrCyclicDependency", err)
	}
}

func TestBuildPlan_CycleDoesNotMaskValidPrefix(t *testing.T) {
	// A cycle anywhere fails the whole plan, even when other steps
	// could have been ordered.
	descriptors := []step.Descriptor{
		desc(t, "ok"),
		desc(t, "x", "y"),
		desc(t, "y", "x"),
	}

	_, err := NewPlanner().BuildPlan(descriptors)
	if !errors.Is(err, ErrCyclicDependency) {
		t.Errorf("error = %v, want ErrCyclicDependency", err)
	}
}

func TestBuildPlan_UnknownDependency(t *testing.T) {
	_, err := NewPlanner().BuildPlan([]step.Descriptor{desc(t, "a", "ghost")})
	if !errors.Is(err, step.ErrUnknownDependency) {
		t.Errorf("error = %v, want step.ErrUnknownDependency", err)
	}
}

func TestBuildPlan_DuplicateID(t *testing.T) {
	_, err := NewPlanner().BuildPlan([]step.Descriptor{desc(t, "a"), desc(t, "a")})
	if !errors.Is(err, step.ErrDuplicateID) {
		t.Errorf("error = %v, want step.ErrDuplicateID", err)
	}
}

func TestPlan_EntriesIsACopy(t *testing.T) {
	p, err := NewPlanner().BuildPlan([]step.Descriptor{desc(t, "a"), desc(t, "b")})
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	entries := p.Entries()
	entries[0] = entries[1]
	if p.IDs()[0] != "a" {
		t.Error("mutating Entries() result should not reach the plan")
	}
}
