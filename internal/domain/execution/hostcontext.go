package execution

import "github.com/tedd-an/rigup/internal/ports"

// HostContext is the single mutable handle to the machine being
// provisioned: package database, locales, git configuration and the
// process environment. It is owned by the Runner for the duration of a
// run and handed to one Executor call at a time; steps never hold it
// concurrently.
type HostContext struct {
	packages ports.PackageManager
	locales  ports.LocaleManager
	git      ports.GitConfigurator
	env      ports.Environment
	workDir  string
}

// NewHostContext bundles the host collaborators. workDir is the default
// git repository directory for steps that do not name one.
func NewHostContext(
	packages ports.PackageManager,
	locales ports.LocaleManager,
	git ports.GitConfigurator,
	env ports.Environment,
	workDir string,
) *HostContext {
	return &HostContext{
		packages: packages,
		locales:  locales,
		git:      git,
		env:      env,
		workDir:  workDir,
	}
}

// Packages returns the package manager collaborator.
func (h *HostContext) Packages() ports.PackageManager {
	return h.packages
}

// Locales returns the locale collaborator.
func (h *HostContext) Locales() ports.LocaleManager {
	return h.locales
}

// Git returns the version-control collaborator.
func (h *HostContext) Git() ports.GitConfigurator {
	return h.git
}

// Env returns the process environment.
func (h *HostContext) Env() ports.Environment {
	return h.env
}

// WorkDir returns the default repository working directory.
func (h *HostContext) WorkDir() string {
	return h.workDir
}
