// Package plan orders validated step descriptors into an executable plan.
package plan

import "github.com/tedd-an/rigup/internal/domain/step"

// Plan is an ordered sequence of descriptors such that every dependency
// appears before its dependents. Construction happens only through the
// Planner, so a Plan in hand is always valid.
type Plan struct {
	entries []step.Descriptor
}

// Len returns the number of entries.
func (p *Plan) Len() int {
	return len(p.entries)
}

// IsEmpty returns true if there are no entries.
func (p *Plan) IsEmpty() bool {
	return len(p.entries) == 0
}

// Entries returns the descriptors in execution order.
func (p *Plan) Entries() []step.Descriptor {
	out := make([]step.Descriptor, len(p.entries))
	copy(out, p.entries)
	return out
}

// IDs returns the step ids in execution order.
func (p *Plan) IDs() []string {
	out := make([]string, len(p.entries))
	for i, d := range p.entries {
		out[i] = d.ID().String()
	}
	return out
}
