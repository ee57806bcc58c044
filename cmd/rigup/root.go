package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tedd-an/rigup/internal/domain/config"
)

var (
	// Global flags
	manifestPath string
	settingsPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "rigup",
	Short: "A declarative environment-bootstrap engine",
	Long: `Rigup provisions a CI or development machine from a declared set of
requirements: OS packages, locales, environment variables, and git
identity and remotes.

Steps are declared in a manifest, ordered by their dependencies, and
executed idempotently: a second run against the same host changes
nothing. Credential-bearing steps are redacted everywhere they can be
observed.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "config", "c", "rigup.yaml", "path to the step manifest")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "rigup.toml", "path to the engine settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the optional settings file.
func loadSettings() (config.Settings, error) {
	return config.LoadSettings(settingsPath)
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Error()
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}
