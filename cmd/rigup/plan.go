package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tedd-an/rigup/internal/app"
	"github.com/tedd-an/rigup/internal/domain/config"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the computed execution plan without touching the host",
	Long: `Plan loads the manifest, validates the dependency graph, and prints
the steps in the order apply would execute them. Nothing on the host is
queried or changed.`,
	RunE: runPlanCmd,
}

// newRigup is swapped out by command tests.
var newRigup = func(out io.Writer, settings config.Settings) *app.Rigup {
	return app.New(out, settings, verbose)
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlanCmd(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	rig := newRigup(os.Stdout, settings)

	p, err := rig.Plan(manifestPath)
	if err != nil {
		return err
	}

	rig.PrintPlan(p)
	return nil
}
