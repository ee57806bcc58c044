// Package localegen adapts the host locale toolchain (locale, locale-gen)
// to the ports.LocaleManager interface.
package localegen

import (
	"context"
	"strings"

	"github.com/tedd-an/rigup/internal/ports"
)

// LocaleGen queries `locale -a` and generates through locale-gen.
type LocaleGen struct {
	runner ports.CommandRunner
}

// NewLocaleGen creates a LocaleGen over the given command runner.
func NewLocaleGen(runner ports.CommandRunner) *LocaleGen {
	return &LocaleGen{runner: runner}
}

// QueryGenerated reports whether the locale is already generated on the
// host. `locale -a` prints normalized names (en_US.utf8 for en_US.UTF-8),
// so both sides are normalized before comparison.
func (g *LocaleGen) QueryGenerated(ctx context.Context, locale string) (bool, error) {
	result, err := g.runner.Run(ctx, "locale", "-a")
	if err != nil {
		return false, err
	}

	want := Normalize(locale)
	for _, line := range strings.Split(result.Stdout, "\n") {
		if Normalize(strings.TrimSpace(line)) == want {
			return true, nil
		}
	}
	return false, nil
}

// Generate generates the locale and returns the locale-gen exit code.
func (g *LocaleGen) Generate(ctx context.Context, locale string) (int, error) {
	result, err := g.runner.Run(ctx, "sudo", "locale-gen", locale)
	if err != nil {
		return -1, err
	}
	return result.ExitCode, nil
}

// Normalize folds a locale name into the form `locale -a` prints:
// lowercase codeset with punctuation removed, e.g. en_US.UTF-8 and
// en_US.utf8 both normalize to en_us.utf8.
func Normalize(locale string) string {
	lower := strings.ToLower(locale)
	if dot := strings.IndexByte(lower, '.'); dot >= 0 {
		codeset := strings.ReplaceAll(lower[dot+1:], "-", "")
		return lower[:dot+1] + codeset
	}
	return lower
}

// Ensure LocaleGen implements ports.LocaleManager.
var _ ports.LocaleManager = (*LocaleGen)(nil)
