package step

import (
	"errors"
	"fmt"
)

// Errors for descriptor construction and set validation.
var (
	ErrEmptyID           = errors.New("step id cannot be empty")
	ErrInvalidID         = errors.New("step id format invalid: must be alphanumeric with colons, hyphens, underscores, or slashes")
	ErrDuplicateID       = errors.New("step with this id already declared")
	ErrUnknownDependency = errors.New("step depends on nonexistent step")
	ErrSecretRequired    = errors.New("step kind requires containsSecret")
)

// UnknownKindError reports a kind outside the enumerated values.
type UnknownKindError struct {
	Value string
}

// Error returns the formatted message.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown step kind %q", e.Value)
}
