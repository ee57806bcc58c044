package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tedd-an/rigup/internal/domain/run"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Provision the host from the manifest",
	Long: `Apply builds the execution plan and runs it against the host.

This command:
1. Computes the plan (same as 'rigup plan')
2. Executes each step in dependency order, skipping satisfied ones
3. Reports per-step outcomes and the overall result

The exit code is 0 only when every step succeeded or was skipped.
Use --dry-run to print the plan without executing.`,
	RunE: runApplyCmd,
}

var (
	applyDryRun  bool
	applyPolicy  string
	applyTimeout time.Duration
	applyReport  string
)

// errRunFailed makes apply exit non-zero without re-printing outcome
// details; the report already carries them.
var errRunFailed = errors.New("bootstrap failed")

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "print the plan without executing")
	applyCmd.Flags().StringVar(&applyPolicy, "policy", "", "failure policy: stop or best-effort")
	applyCmd.Flags().DurationVar(&applyTimeout, "timeout", 0, "whole-run deadline, e.g. 10m")
	applyCmd.Flags().StringVar(&applyReport, "report", "", "write the run report as YAML to this path")
}

func runApplyCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	rig := newRigup(os.Stdout, settings)

	if applyPolicy != "" {
		policy, err := run.ParsePolicy(applyPolicy)
		if err != nil {
			return err
		}
		rig = rig.WithPolicy(policy)
	}
	if cmd.Flags().Changed("timeout") {
		rig = rig.WithTimeout(applyTimeout)
	}

	p, err := rig.Plan(manifestPath)
	if err != nil {
		return err
	}

	rig.PrintPlan(p)

	if applyDryRun {
		rig.PrintDryRun()
		return nil
	}

	report, err := rig.Apply(ctx, p)
	if err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	rig.PrintReport(report)

	if applyReport != "" {
		if err := rig.WriteReport(report, applyReport); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if !report.Succeeded() {
		return errRunFailed
	}
	return nil
}
