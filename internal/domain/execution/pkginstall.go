package execution

import (
	"context"
	"fmt"
	"strings"

	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/validation"
)

// executePackages ensures the packages named in the "packages" param are
// installed. Already-present packages are never reinstalled; the missing
// ones go to the collaborator in a single batched call.
func (e *Executor) executePackages(ctx context.Context, d step.Descriptor, host *HostContext) Outcome {
	names := splitList(d.Param("packages"))
	if len(names) == 0 {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "packages"), 0)
	}

	for _, name := range names {
		if err := validation.ValidatePackageName(name); err != nil {
			return e.failure(d, err, 0)
		}
	}

	installed, err := host.Packages().QueryInstalled(ctx, names)
	if err != nil {
		return e.failure(d, fmt.Errorf("query package database: %w", err), -1)
	}

	missing := make([]string, 0, len(names))
	for _, name := range names {
		if !installed[name] {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return NewOutcome(d.ID(), StatusSkipped).
			WithDetail(fmt.Sprintf("all %d packages already installed", len(names)))
	}

	code, err := host.Packages().Install(ctx, missing)
	if err != nil {
		return e.failure(d, fmt.Errorf("install packages: %w", err), -1)
	}
	if code != 0 {
		return e.failure(d, &HostCommandFailedError{
			Op:       "install " + strings.Join(missing, " "),
			ExitCode: code,
		}, code)
	}

	return NewOutcome(d.ID(), StatusSuccess).
		WithDetail("installed: " + strings.Join(missing, " "))
}
