// Package step defines the descriptor model: pure data describing one
// provisioning action, validated at construction and immutable afterwards.
package step

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern validates step id format. Allows alphanumeric segments with
// hyphens, underscores and slashes, separated by colons. No spaces, no
// leading or trailing colon.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_/-]*(?::[a-zA-Z0-9][a-zA-Z0-9_/-]*)*$`)

// ID uniquely identifies a step. Format: kind:resource, e.g.
// "package-install:build-deps" or "git-remote:upstream".
type ID struct {
	value string
}

// NewID creates an ID from a string.
func NewID(value string) (ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ID{}, ErrEmptyID
	}
	if !idPattern.MatchString(trimmed) {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, value)
	}
	return ID{value: trimmed}, nil
}

// MustNewID creates an ID, panicking on error. For compile-time known
// values only.
func MustNewID(value string) ID {
	id, err := NewID(value)
	if err != nil {
		panic("invalid step id: " + value + ": " + err.Error())
	}
	return id
}

// String returns the string representation.
func (id ID) String() string {
	return id.value
}

// Equals checks equality with another ID.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// IsZero returns true for the zero-value ID.
func (id ID) IsZero() bool {
	return id.value == ""
}

// Descriptor is one declared provisioning step. It carries no behavior;
// the Executor interprets it. Descriptors are immutable once built.
type Descriptor struct {
	id             ID
	kind           Kind
	params         map[string]string
	dependsOn      []ID
	containsSecret bool
}

// NewDescriptor validates and creates a Descriptor. The params map is
// copied so later mutation by the caller cannot reach the descriptor.
func NewDescriptor(id string, kind Kind, params map[string]string) (Descriptor, error) {
	stepID, err := NewID(id)
	if err != nil {
		return Descriptor{}, err
	}
	if !kind.Valid() {
		return Descriptor{}, &UnknownKindError{Value: kind.String()}
	}

	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}

	return Descriptor{
		id:     stepID,
		kind:   kind,
		params: copied,
	}, nil
}

// ID returns the step identifier.
func (d Descriptor) ID() ID {
	return d.id
}

// Kind returns the step kind.
func (d Descriptor) Kind() Kind {
	return d.kind
}

// Param returns a named parameter, or "" when absent.
func (d Descriptor) Param(name string) string {
	return d.params[name]
}

// HasParam reports whether a parameter is present and non-empty.
func (d Descriptor) HasParam(name string) bool {
	return d.params[name] != ""
}

// DependsOn returns the ids of steps that must complete first.
func (d Descriptor) DependsOn() []ID {
	out := make([]ID, len(d.dependsOn))
	copy(out, d.dependsOn)
	return out
}

// ContainsSecret reports whether the step carries credential material.
func (d Descriptor) ContainsSecret() bool {
	return d.containsSecret
}

// WithDependsOn returns a copy depending on the given step ids.
func (d Descriptor) WithDependsOn(ids ...ID) Descriptor {
	deps := make([]ID, len(ids))
	copy(deps, ids)
	d.dependsOn = deps
	return d
}

// WithSecret returns a copy marked as carrying credential material.
func (d Descriptor) WithSecret() Descriptor {
	d.containsSecret = true
	return d
}

// Set is a validated, declaration-ordered collection of descriptors.
type Set struct {
	descriptors []Descriptor
	byID        map[string]int
}

// NewSet validates a slice of descriptors as a unit: ids must be unique,
// every dependency must reference a descriptor in the same input, and
// kinds that require a secret must be flagged. Declaration order is
// preserved; the planner uses it as the tie-break.
func NewSet(descriptors []Descriptor) (*Set, error) {
	byID := make(map[string]int, len(descriptors))

	for i, d := range descriptors {
		key := d.id.String()
		if _, exists := byID[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, key)
		}
		if d.kind.RequiresSecret() && !d.containsSecret {
			return nil, fmt.Errorf("%w: step %q (kind %s)", ErrSecretRequired, key, d.kind)
		}
		byID[key] = i
	}

	for _, d := range descriptors {
		for _, dep := range d.dependsOn {
			if _, exists := byID[dep.String()]; !exists {
				return nil, fmt.Errorf("%w: step %q depends on %q", ErrUnknownDependency, d.id, dep)
			}
		}
	}

	copied := make([]Descriptor, len(descriptors))
	copy(copied, descriptors)

	return &Set{descriptors: copied, byID: byID}, nil
}

// Len returns the number of descriptors.
func (s *Set) Len() int {
	return len(s.descriptors)
}

// Descriptors returns the descriptors in declaration order.
func (s *Set) Descriptors() []Descriptor {
	out := make([]Descriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Get retrieves a descriptor by id.
func (s *Set) Get(id ID) (Descriptor, bool) {
	i, ok := s.byID[id.String()]
	if !ok {
		return Descriptor{}, false
	}
	return s.descriptors[i], true
}
