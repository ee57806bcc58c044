package plan

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tedd-an/rigup/internal/domain/step"
)

// ErrCyclicDependency indicates the dependency graph has no topological
// order.
var ErrCyclicDependency = errors.New("cyclic dependency detected")

// Planner builds execution plans from declared descriptors.
type Planner struct{}

// NewPlanner creates a new Planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// BuildPlan validates the descriptors and returns them in execution
// order. The sort is a stable topological sort: steps with no ordering
// constraint between them keep their declaration order, so a caller that
// lists package installs before env and credential steps gets exactly
// that order unless an explicit dependency says otherwise. The planner
// never infers ordering from side effects.
func (p *Planner) BuildPlan(descriptors []step.Descriptor) (*Plan, error) {
	set, err := step.NewSet(descriptors)
	if err != nil {
		return nil, err
	}

	ordered := set.Descriptors()

	// In-degree per step, counting only edges inside the set.
	indegree := make(map[string]int, len(ordered))
	dependents := make(map[string][]string, len(ordered))
	for _, d := range ordered {
		id := d.ID().String()
		indegree[id] += 0
		for _, dep := range d.DependsOn() {
			indegree[id]++
			dependents[dep.String()] = append(dependents[dep.String()], id)
		}
	}

	// Kahn's algorithm with a declaration-order frontier. Candidates are
	// kept sorted by declaration index, so the emitted order is stable.
	index := make(map[string]int, len(ordered))
	for i, d := range ordered {
		index[d.ID().String()] = i
	}

	frontier := make([]string, 0, len(ordered))
	for _, d := range ordered {
		if indegree[d.ID().String()] == 0 {
			frontier = append(frontier, d.ID().String())
		}
	}

	emitted := make([]step.Descriptor, 0, len(ordered))
	for len(frontier) > 0 {
		sort.Slice(frontier, func(i, j int) bool {
			return index[frontier[i]] < index[frontier[j]]
		})

		id := frontier[0]
		frontier = frontier[1:]

		d, _ := set.Get(step.MustNewID(id))
		emitted = append(emitted, d)

		for _, dependent := range dependents[id] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				frontier = append(frontier, dependent)
			}
		}
	}

	if len(emitted) != set.Len() {
		remaining := make([]string, 0, set.Len()-len(emitted))
		for _, d := range ordered {
			if indegree[d.ID().String()] > 0 {
				remaining = append(remaining, d.ID().String())
			}
		}
		return nil, fmt.Errorf("%w: involving %s", ErrCyclicDependency, strings.Join(remaining, ", "))
	}

	return &Plan{entries: emitted}, nil
}
