// Package pkgmgr adapts the Debian package toolchain (dpkg, apt-get) to
// the ports.PackageManager interface.
package pkgmgr

import (
	"context"
	"strings"

	"github.com/tedd-an/rigup/internal/ports"
)

// AptManager queries dpkg and installs through apt-get.
type AptManager struct {
	runner ports.CommandRunner
}

// NewAptManager creates an AptManager over the given command runner.
func NewAptManager(runner ports.CommandRunner) *AptManager {
	return &AptManager{runner: runner}
}

// QueryInstalled returns the subset of names present in the dpkg
// database with status "installed". One dpkg-query call covers the full
// set; dpkg-query exits non-zero when any name is unknown, but still
// prints the entries it found, so a non-zero exit is not an error here.
func (m *AptManager) QueryInstalled(ctx context.Context, names []string) (map[string]bool, error) {
	installed := make(map[string]bool, len(names))
	if len(names) == 0 {
		return installed, nil
	}

	args := []string{"-W", "-f=${Package}\t${db:Status-Status}\n"}
	args = append(args, names...)

	result, err := m.runner.Run(ctx, "dpkg-query", args...)
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(result.Stdout, "\n") {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[1]) == "installed" {
			installed[parts[0]] = true
		}
	}

	return installed, nil
}

// Install installs the named packages in one apt-get invocation and
// returns the apt-get exit code.
func (m *AptManager) Install(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	args := []string{"apt-get", "install", "-y"}
	args = append(args, names...)

	result, err := m.runner.Run(ctx, "sudo", args...)
	if err != nil {
		return -1, err
	}
	return result.ExitCode, nil
}

// Ensure AptManager implements ports.PackageManager.
var _ ports.PackageManager = (*AptManager)(nil)
