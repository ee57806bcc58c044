package mocks

import (
	"context"
	"sync"

	"github.com/tedd-an/rigup/internal/ports"
)

// Packages is a test double for ports.PackageManager backed by an
// in-memory package database.
type Packages struct {
	mu          sync.Mutex
	installed   map[string]bool
	InstallErr  error
	InstallCode int
	installs    [][]string
}

// NewPackages creates a Packages double with the given packages present.
func NewPackages(present ...string) *Packages {
	installed := make(map[string]bool, len(present))
	for _, name := range present {
		installed[name] = true
	}
	return &Packages{installed: installed}
}

// QueryInstalled returns the subset of names present.
func (p *Packages) QueryInstalled(_ context.Context, names []string) (map[string]bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]bool, len(names))
	for _, name := range names {
		if p.installed[name] {
			out[name] = true
		}
	}
	return out, nil
}

// Install records the batch and marks the packages installed unless an
// error or non-zero exit code is configured.
func (p *Packages) Install(_ context.Context, names []string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.installs = append(p.installs, append([]string(nil), names...))
	if p.InstallErr != nil {
		return -1, p.InstallErr
	}
	if p.InstallCode != 0 {
		return p.InstallCode, nil
	}
	for _, name := range names {
		p.installed[name] = true
	}
	return 0, nil
}

// Installs returns the recorded install batches.
func (p *Packages) Installs() [][]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]string, len(p.installs))
	copy(out, p.installs)
	return out
}

// Locales is a test double for ports.LocaleManager.
type Locales struct {
	mu           sync.Mutex
	generated    map[string]bool
	GenerateErr  error
	GenerateCode int
	generations  []string
}

// NewLocales creates a Locales double with the given locales generated.
func NewLocales(present ...string) *Locales {
	generated := make(map[string]bool, len(present))
	for _, l := range present {
		generated[l] = true
	}
	return &Locales{generated: generated}
}

// QueryGenerated reports whether the locale exists.
func (l *Locales) QueryGenerated(_ context.Context, locale string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generated[locale], nil
}

// Generate records the request and marks the locale generated.
func (l *Locales) Generate(_ context.Context, locale string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generations = append(l.generations, locale)
	if l.GenerateErr != nil {
		return -1, l.GenerateErr
	}
	if l.GenerateCode != 0 {
		return l.GenerateCode, nil
	}
	l.generated[locale] = true
	return 0, nil
}

// Generations returns the recorded generate calls.
func (l *Locales) Generations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.generations...)
}

// Git is a test double for ports.GitConfigurator backed by in-memory
// config and remote maps, keyed by repository dir.
type Git struct {
	mu      sync.Mutex
	config  map[string]map[string]string
	remotes map[string]map[string]string
	SetErr  error
	SetCode int
}

// NewGit creates an empty Git double.
func NewGit() *Git {
	return &Git{
		config:  make(map[string]map[string]string),
		remotes: make(map[string]map[string]string),
	}
}

// SeedConfig pre-populates a config key.
func (g *Git) SeedConfig(dir, key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.config[dir] == nil {
		g.config[dir] = make(map[string]string)
	}
	g.config[dir][key] = value
}

// SeedRemote pre-populates a remote.
func (g *Git) SeedRemote(dir, name, url string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.remotes[dir] == nil {
		g.remotes[dir] = make(map[string]string)
	}
	g.remotes[dir][name] = url
}

// ConfigValue returns the current value of a config key.
func (g *Git) ConfigValue(dir, key string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config[dir][key], nil
}

// SetConfig sets a config key.
func (g *Git) SetConfig(_ context.Context, dir, key, value string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.SetErr != nil {
		return -1, g.SetErr
	}
	if g.SetCode != 0 {
		return g.SetCode, nil
	}
	if g.config[dir] == nil {
		g.config[dir] = make(map[string]string)
	}
	g.config[dir][key] = value
	return 0, nil
}

// RemoteURL returns the URL of a named remote.
func (g *Git) RemoteURL(dir, name string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	url, ok := g.remotes[dir][name]
	return url, ok, nil
}

// AddRemote registers a new remote.
func (g *Git) AddRemote(_ context.Context, dir, name, url string) (int, error) {
	return g.setRemote(dir, name, url)
}

// SetRemoteURL updates an existing remote.
func (g *Git) SetRemoteURL(_ context.Context, dir, name, url string) (int, error) {
	return g.setRemote(dir, name, url)
}

func (g *Git) setRemote(dir, name, url string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.SetErr != nil {
		return -1, g.SetErr
	}
	if g.SetCode != 0 {
		return g.SetCode, nil
	}
	if g.remotes[dir] == nil {
		g.remotes[dir] = make(map[string]string)
	}
	g.remotes[dir][name] = url
	return 0, nil
}

// Env is an in-memory test double for ports.Environment.
type Env struct {
	mu     sync.Mutex
	values map[string]string
}

// NewEnv creates an empty Env double.
func NewEnv() *Env {
	return &Env{values: make(map[string]string)}
}

// Get returns the value of a variable and whether it is set.
func (e *Env) Get(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.values[name]
	return v, ok
}

// Set sets a variable.
func (e *Env) Set(name, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[name] = value
	return nil
}

// Interface guards.
var (
	_ ports.PackageManager  = (*Packages)(nil)
	_ ports.LocaleManager   = (*Locales)(nil)
	_ ports.GitConfigurator = (*Git)(nil)
	_ ports.Environment     = (*Env)(nil)
)
