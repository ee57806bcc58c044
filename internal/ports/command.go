// Package ports defines interfaces for external collaborators.
package ports

import "context"

// CommandResult holds the outcome of one host command invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records a command invocation.
type CommandCall struct {
	Command string
	Args    []string
}

// CommandRunner executes host commands. Implementations return a
// CommandResult for commands that ran, even when they exited non-zero;
// the error return is reserved for commands that could not be started.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}
