package ports

import "context"

// PackageManager queries and mutates the host package database.
// Install is expected to batch: one invocation for the full set of
// missing packages, never one call per package.
type PackageManager interface {
	// QueryInstalled returns the subset of names currently installed.
	QueryInstalled(ctx context.Context, names []string) (map[string]bool, error)

	// Install installs the named packages and returns the collaborator
	// exit code. A non-zero code means the install failed.
	Install(ctx context.Context, names []string) (int, error)
}

// LocaleManager queries and generates host locales.
type LocaleManager interface {
	QueryGenerated(ctx context.Context, locale string) (bool, error)
	Generate(ctx context.Context, locale string) (int, error)
}

// GitConfigurator reads and writes repository-local git configuration.
// The dir argument is the repository working directory.
type GitConfigurator interface {
	// ConfigValue returns the current value of a config key, or "" when
	// the key (or the config file itself) is absent.
	ConfigValue(dir, key string) (string, error)

	// SetConfig sets a repository-local config key and returns the git
	// exit code.
	SetConfig(ctx context.Context, dir, key, value string) (int, error)

	// RemoteURL returns the URL of a named remote and whether it exists.
	RemoteURL(dir, name string) (string, bool, error)

	// AddRemote registers a new remote.
	AddRemote(ctx context.Context, dir, name, url string) (int, error)

	// SetRemoteURL updates the URL of an existing remote.
	SetRemoteURL(ctx context.Context, dir, name, url string) (int, error)
}

// Environment is the process-wide environment variable surface. Writes
// are visible to the running process and exported to child processes.
type Environment interface {
	Get(name string) (string, bool)
	Set(name, value string) error
}
