package execution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tedd-an/rigup/internal/domain/secret"
	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/ports"
)

// Executor runs a single step against the host, idempotently. Every
// kind queries current host state before mutating, so re-running a plan
// against an already-provisioned host yields Skipped outcomes. The
// Executor makes at most one attempt per step; retry policy, if any
// exists, belongs to the caller.
type Executor struct {
	redactor *secret.Redactor
	log      ports.Logger
}

// NewExecutor creates an Executor. All outcome details and errors of
// secret-bearing steps pass through the redactor before being stored.
func NewExecutor(log ports.Logger, redactor *secret.Redactor) *Executor {
	if redactor == nil {
		redactor = secret.NewRedactor("")
	}
	return &Executor{log: log, redactor: redactor}
}

// Execute runs one step and reports its outcome. Execution is
// synchronous and blocking. A panic inside a handler is converted into
// a Failed outcome; the panic message is scrubbed like any other detail,
// so even a crash path cannot leak a secret.
func (e *Executor) Execute(ctx context.Context, d step.Descriptor, host *HostContext) (out Outcome) {
	start := time.Now()

	if d.ContainsSecret() {
		e.redactor.Add(d.Param("token"))
	}

	defer func() {
		if r := recover(); r != nil {
			out = NewOutcome(d.ID(), StatusFailed).
				WithDetail(e.redactor.Scrub(fmt.Sprintf("panic: %v", r))).
				WithExitCode(-1).
				WithDuration(time.Since(start))
		}
	}()

	e.log.Debug(ctx, "step running", ports.F("step", d.ID().String()), ports.F("kind", d.Kind().String()))

	switch d.Kind() {
	case step.KindPackageInstall:
		out = e.executePackages(ctx, d, host)
	case step.KindEnvVar:
		out = e.executeEnvVar(ctx, d, host)
	case step.KindLocaleSet:
		out = e.executeLocale(ctx, d, host)
	case step.KindGitIdentity:
		out = e.executeGitIdentity(ctx, d, host)
	case step.KindGitRemote:
		out = e.executeGitRemote(ctx, d, host)
	default:
		out = NewOutcome(d.ID(), StatusFailed).
			WithDetail(fmt.Sprintf("unknown step kind %q", d.Kind()))
	}

	if d.ContainsSecret() {
		out = out.WithDetail(e.redactor.Scrub(out.Detail()))
	}
	out = out.WithDuration(time.Since(start))

	e.log.Debug(ctx, "step finished",
		ports.F("step", d.ID().String()),
		ports.F("status", out.Status().String()),
		ports.F("detail", out.Detail()))

	return out
}

// failure builds a Failed outcome from an execution error, scrubbing the
// message when the step carries a secret.
func (e *Executor) failure(d step.Descriptor, err error, exitCode int) Outcome {
	msg := err.Error()
	if d.ContainsSecret() {
		msg = e.redactor.ScrubError(err).Error()
	}
	return NewOutcome(d.ID(), StatusFailed).WithDetail(msg).WithExitCode(exitCode)
}

// splitList splits a whitespace- or comma-separated parameter value.
func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
}
