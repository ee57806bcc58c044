// Package environ adapts the process environment to the ports.Environment
// interface. Variables set here are visible to the running process and
// exported to every child process spawned afterwards.
package environ

import (
	"os"

	"github.com/tedd-an/rigup/internal/ports"
)

// ProcessEnvironment reads and writes the real process environment.
type ProcessEnvironment struct{}

// NewProcessEnvironment creates a ProcessEnvironment.
func NewProcessEnvironment() *ProcessEnvironment {
	return &ProcessEnvironment{}
}

// Get returns the value of a variable and whether it is set.
func (e *ProcessEnvironment) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Set sets a variable for the remainder of the process lifetime.
func (e *ProcessEnvironment) Set(name, value string) error {
	return os.Setenv(name, value)
}

// Ensure ProcessEnvironment implements ports.Environment.
var _ ports.Environment = (*ProcessEnvironment)(nil)
