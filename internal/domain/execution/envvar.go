package execution

import (
	"context"
	"fmt"

	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/validation"
)

// executeEnvVar exports a named variable into the process environment.
// Setting a variable to its current value is a no-op and reports
// Skipped; a different value overwrites and reports Success.
func (e *Executor) executeEnvVar(_ context.Context, d step.Descriptor, host *HostContext) Outcome {
	name := d.Param("name")
	if name == "" {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "name"), 0)
	}
	if err := validation.ValidateEnvVarName(name); err != nil {
		return e.failure(d, err, 0)
	}

	value := d.Param("value")

	if current, ok := host.Env().Get(name); ok && current == value {
		return NewOutcome(d.ID(), StatusSkipped).
			WithDetail(name + " already set")
	}

	if err := host.Env().Set(name, value); err != nil {
		return e.failure(d, fmt.Errorf("set %s: %w", name, err), -1)
	}

	return NewOutcome(d.ID(), StatusSuccess).
		WithDetail(fmt.Sprintf("%s=%s exported", name, value))
}
