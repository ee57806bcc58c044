// Package command provides the host command execution adapter.
package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/tedd-an/rigup/internal/ports"
)

// RealRunner executes actual host commands.
//
// Every invocation is traced at debug level through the injected logger.
// Callers that run credential-bearing commands must hand RealRunner a
// redacting logger; the runner itself does not inspect arguments.
type RealRunner struct {
	log ports.Logger
}

// NewRealRunner creates a RealRunner that traces through log.
func NewRealRunner(log ports.Logger) *RealRunner {
	return &RealRunner{log: log}
}

// Run executes a command and returns the result. A non-zero exit code is
// reported in the result, not as an error; the error return is reserved
// for commands that could not be started at all.
func (r *RealRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	if r.log != nil {
		r.log.Debug(ctx, "exec", ports.F("cmd", command+" "+strings.Join(args, " ")))
	}

	cmd := exec.CommandContext(ctx, command, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}

// Ensure RealRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*RealRunner)(nil)
