package execution

import (
	"context"
	"fmt"

	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/validation"
)

// executeGitIdentity sets repository-local user.name and user.email.
// Overwrite is idempotent: matching values report Skipped.
func (e *Executor) executeGitIdentity(ctx context.Context, d step.Descriptor, host *HostContext) Outcome {
	name := d.Param("name")
	email := d.Param("email")
	if name == "" {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "name"), 0)
	}
	if email == "" {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "email"), 0)
	}
	for _, v := range []string{name, email} {
		if err := validation.ValidateConfigValue(v); err != nil {
			return e.failure(d, err, 0)
		}
	}

	dir := d.Param("dir")
	if dir == "" {
		dir = host.WorkDir()
	}

	wanted := map[string]string{
		"user.name":  name,
		"user.email": email,
	}

	changed := 0
	for _, key := range []string{"user.name", "user.email"} {
		current, err := host.Git().ConfigValue(dir, key)
		if err != nil {
			return e.failure(d, fmt.Errorf("read %s: %w", key, err), -1)
		}
		if current == wanted[key] {
			continue
		}

		code, err := host.Git().SetConfig(ctx, dir, key, wanted[key])
		if err != nil {
			return e.failure(d, fmt.Errorf("set %s: %w", key, err), -1)
		}
		if code != 0 {
			return e.failure(d, &HostCommandFailedError{
				Op:       "git config " + key,
				ExitCode: code,
			}, code)
		}
		changed++
	}

	if changed == 0 {
		return NewOutcome(d.ID(), StatusSkipped).
			WithDetail("identity already configured")
	}
	return NewOutcome(d.ID(), StatusSuccess).
		WithDetail(fmt.Sprintf("identity set to %s <%s>", name, email))
}
