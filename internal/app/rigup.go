// Package app wires the adapters to the engine and exposes the
// operations the CLI calls.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tedd-an/rigup/internal/adapters/command"
	"github.com/tedd-an/rigup/internal/adapters/environ"
	"github.com/tedd-an/rigup/internal/adapters/gitcli"
	"github.com/tedd-an/rigup/internal/adapters/localegen"
	"github.com/tedd-an/rigup/internal/adapters/logging"
	"github.com/tedd-an/rigup/internal/adapters/pkgmgr"
	"github.com/tedd-an/rigup/internal/domain/config"
	"github.com/tedd-an/rigup/internal/domain/execution"
	"github.com/tedd-an/rigup/internal/domain/plan"
	"github.com/tedd-an/rigup/internal/domain/run"
	"github.com/tedd-an/rigup/internal/domain/secret"
	"github.com/tedd-an/rigup/internal/ports"
)

// Rigup is the application orchestrator: it loads the manifest, builds
// the plan, and runs it against the host. All logging and all outcome
// details flow through one shared redactor.
type Rigup struct {
	loader   *config.Loader
	planner  *plan.Planner
	redactor *secret.Redactor
	log      ports.Logger
	host     *execution.HostContext
	env      ports.Environment
	out      io.Writer
	policy   run.FailurePolicy
	timeout  time.Duration
}

// New creates a Rigup wired to the real host: apt/dpkg for packages,
// locale-gen for locales, the git binary for version control, and the
// process environment.
func New(out io.Writer, settings config.Settings, verbose bool) *Rigup {
	redactor := secret.NewRedactor(settings.Mask)

	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	log := logging.NewRedacted(
		logging.NewConsoleLogger(logging.WithLevel(level)),
		redactor.ScrubFunc(),
	)

	runner := command.NewRealRunner(log)
	env := environ.NewProcessEnvironment()
	host := execution.NewHostContext(
		pkgmgr.NewAptManager(runner),
		localegen.NewLocaleGen(runner),
		gitcli.NewGitCLI(runner),
		env,
		settings.WorkDir,
	)

	policy := run.StopOnFirstFailure
	if p, err := run.ParsePolicy(settings.Policy); err == nil {
		policy = p
	}

	return &Rigup{
		loader:   config.NewLoader(),
		planner:  plan.NewPlanner(),
		redactor: redactor,
		log:      log,
		host:     host,
		env:      env,
		out:      out,
		policy:   policy,
		timeout:  settings.Timeout(),
	}
}

// WithPolicy overrides the failure policy.
func (r *Rigup) WithPolicy(policy run.FailurePolicy) *Rigup {
	r.policy = policy
	return r
}

// WithTimeout overrides the whole-run deadline.
func (r *Rigup) WithTimeout(timeout time.Duration) *Rigup {
	r.timeout = timeout
	return r
}

// WithHostContext substitutes the host collaborators. Used by tests to
// run plans against in-memory doubles.
func (r *Rigup) WithHostContext(host *execution.HostContext, env ports.Environment) *Rigup {
	r.host = host
	r.env = env
	return r
}

// WithLogger substitutes the logger. The redactor still applies.
func (r *Rigup) WithLogger(log ports.Logger) *Rigup {
	r.log = logging.NewRedacted(log, r.redactor.ScrubFunc())
	return r
}

// Plan loads the manifest and computes the execution order. Secret
// values from the manifest are registered with the redactor before
// anything else can observe them.
func (r *Rigup) Plan(path string) (*plan.Plan, error) {
	manifest, err := r.loader.LoadManifest(path)
	if err != nil {
		return nil, err
	}

	r.redactor.Add(manifest.SecretValues(r.env)...)

	descriptors, err := manifest.Descriptors(r.env)
	if err != nil {
		return nil, err
	}

	p, err := r.planner.BuildPlan(descriptors)
	if err != nil {
		return nil, fmt.Errorf("failed to plan: %w", err)
	}
	return p, nil
}

// Apply runs the plan against the host and returns the report.
func (r *Rigup) Apply(ctx context.Context, p *plan.Plan) (*run.Report, error) {
	executor := execution.NewExecutor(r.log, r.redactor)
	runner := run.NewRunner(executor, r.log).
		WithPolicy(r.policy).
		WithTimeout(r.timeout)
	return runner.Run(ctx, p, r.host)
}

// WriteReport persists the report snapshot as YAML, for CI artifact
// collection.
func (r *Rigup) WriteReport(report *run.Report, path string) error {
	data, err := yaml.Marshal(report.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
