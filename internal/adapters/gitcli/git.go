// Package gitcli adapts the git binary to the ports.GitConfigurator
// interface. Writes go through git itself; reads for idempotence checks
// parse the repository config file directly so that no materialized
// remote URL ever has to round-trip through a command line.
package gitcli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/tedd-an/rigup/internal/ports"
)

// GitCLI drives repository-local git configuration.
type GitCLI struct {
	runner ports.CommandRunner
}

// NewGitCLI creates a GitCLI over the given command runner.
func NewGitCLI(runner ports.CommandRunner) *GitCLI {
	return &GitCLI{runner: runner}
}

// ConfigValue returns the current value of a dotted config key such as
// "user.name", or "" when the key or the config file is absent.
func (g *GitCLI) ConfigValue(dir, key string) (string, error) {
	cfg, err := g.loadConfig(dir)
	if err != nil || cfg == nil {
		return "", err
	}

	section, name, ok := splitKey(key)
	if !ok {
		return "", nil
	}

	sec, err := cfg.GetSection(section)
	if err != nil {
		return "", nil
	}
	if !sec.HasKey(name) {
		return "", nil
	}
	return sec.Key(name).String(), nil
}

// SetConfig sets a repository-local config key via git config.
func (g *GitCLI) SetConfig(ctx context.Context, dir, key, value string) (int, error) {
	result, err := g.runner.Run(ctx, "git", "-C", dir, "config", key, value)
	if err != nil {
		return -1, err
	}
	return result.ExitCode, nil
}

// RemoteURL returns the URL of a named remote and whether it exists.
func (g *GitCLI) RemoteURL(dir, name string) (string, bool, error) {
	cfg, err := g.loadConfig(dir)
	if err != nil || cfg == nil {
		return "", false, err
	}

	sec, err := cfg.GetSection(`remote "` + name + `"`)
	if err != nil {
		return "", false, nil
	}
	if !sec.HasKey("url") {
		return "", false, nil
	}
	return sec.Key("url").String(), true, nil
}

// AddRemote registers a new remote.
func (g *GitCLI) AddRemote(ctx context.Context, dir, name, url string) (int, error) {
	result, err := g.runner.Run(ctx, "git", "-C", dir, "remote", "add", name, url)
	if err != nil {
		return -1, err
	}
	return result.ExitCode, nil
}

// SetRemoteURL updates the URL of an existing remote.
func (g *GitCLI) SetRemoteURL(ctx context.Context, dir, name, url string) (int, error) {
	result, err := g.runner.Run(ctx, "git", "-C", dir, "remote", "set-url", name, url)
	if err != nil {
		return -1, err
	}
	return result.ExitCode, nil
}

// loadConfig loads .git/config for the repository at dir. A missing file
// means an unconfigured repository, not an error.
func (g *GitCLI) loadConfig(dir string) (*ini.File, error) {
	path := filepath.Join(dir, ".git", "config")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	// Git config files indent keys with tabs and quote subsections;
	// ini handles both with these options.
	return ini.LoadSources(ini.LoadOptions{
		AllowShadows:             true,
		SpaceBeforeInlineComment: true,
	}, path)
}

// splitKey splits "user.name" into ("user", "name"). Keys with a
// subsection, such as `branch.main.remote`, map to section
// `branch "main"` and key `remote`.
func splitKey(key string) (section, name string, ok bool) {
	parts := strings.Split(key, ".")
	switch len(parts) {
	case 2:
		return parts[0], parts[1], true
	case 3:
		return parts[0] + ` "` + parts[1] + `"`, parts[2], true
	default:
		return "", "", false
	}
}

// Ensure GitCLI implements ports.GitConfigurator.
var _ ports.GitConfigurator = (*GitCLI)(nil)
