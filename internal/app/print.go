package app

import (
	"fmt"
	"time"

	"github.com/tedd-an/rigup/internal/domain/execution"
	"github.com/tedd-an/rigup/internal/domain/plan"
	"github.com/tedd-an/rigup/internal/domain/run"
)

// PrintPlan outputs a human-readable execution plan.
func (r *Rigup) PrintPlan(p *plan.Plan) {
	r.printf("\nBootstrap Plan\n")
	r.printf("==============\n\n")

	if p.IsEmpty() {
		r.printf("No steps declared.\n")
		return
	}

	r.printf("Steps: %d, in execution order:\n\n", p.Len())
	for i, d := range p.Entries() {
		r.printf("  %2d. %s (%s)", i+1, d.ID().String(), d.Kind().String())
		if deps := d.DependsOn(); len(deps) > 0 {
			r.printf("  [after:")
			for _, dep := range deps {
				r.printf(" %s", dep.String())
			}
			r.printf("]")
		}
		r.printf("\n")
	}

	r.printf("\nRun 'rigup apply' to execute this plan.\n")
}

// PrintDryRun outputs the dry-run notice.
func (r *Rigup) PrintDryRun() {
	r.printf("\n[Dry run - no changes made]\n")
}

// PrintReport outputs execution results.
func (r *Rigup) PrintReport(report *run.Report) {
	r.printf("\nBootstrap Results (run %s)\n", report.RunID())
	r.printf("=================\n\n")

	for _, o := range report.Outcomes() {
		switch o.Status() {
		case execution.StatusSuccess:
			r.printf("  ✓ %s", o.StepID().String())
		case execution.StatusSkipped:
			r.printf("  - %s (skipped)", o.StepID().String())
		case execution.StatusFailed:
			r.printf("  ✗ %s (exit %d)", o.StepID().String(), o.ExitCode())
		default:
			r.printf("  ? %s", o.StepID().String())
		}
		if o.Detail() != "" {
			r.printf(": %s", o.Detail())
		}
		r.printf("\n")
	}

	s := report.Summary()
	r.printf("\nSummary: %d succeeded, %d skipped, %d failed (%s, %s)\n",
		s.Succeeded, s.Skipped, s.Failed, report.State(), report.Elapsed().Round(time.Millisecond))
}

// printf writes to the output writer, ignoring errors.
func (r *Rigup) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
