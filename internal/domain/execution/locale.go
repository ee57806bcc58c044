package execution

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/validation"
)

// defaultLocaleVars are the environment variables exported for a locale
// when the step does not name its own via the "export" param.
var defaultLocaleVars = []string{"LANG", "LC_ALL"}

// executeLocale ensures the locale named in the "locale" param is
// generated on the host, then exports the corresponding environment
// variables as a composite sub-step. Generation is skipped when the
// locale already exists.
func (e *Executor) executeLocale(ctx context.Context, d step.Descriptor, host *HostContext) Outcome {
	locale := d.Param("locale")
	if locale == "" {
		return e.failure(d, fmt.Errorf("%w: %q", ErrMissingParam, "locale"), 0)
	}
	if err := validation.ValidateLocale(locale); err != nil {
		return e.failure(d, err, 0)
	}
	if err := checkLocaleTag(locale); err != nil {
		return e.failure(d, err, 0)
	}

	generated, err := host.Locales().QueryGenerated(ctx, locale)
	if err != nil {
		return e.failure(d, fmt.Errorf("query locales: %w", err), -1)
	}

	ran := false
	if !generated {
		code, err := host.Locales().Generate(ctx, locale)
		if err != nil {
			return e.failure(d, fmt.Errorf("generate locale: %w", err), -1)
		}
		if code != 0 {
			return e.failure(d, &HostCommandFailedError{
				Op:       "locale-gen " + locale,
				ExitCode: code,
			}, code)
		}
		ran = true
	}

	vars := splitList(d.Param("export"))
	if len(vars) == 0 {
		vars = defaultLocaleVars
	}

	changed := make([]string, 0, len(vars))
	for _, name := range vars {
		if err := validation.ValidateEnvVarName(name); err != nil {
			return e.failure(d, err, 0)
		}
		if current, ok := host.Env().Get(name); ok && current == locale {
			continue
		}
		if err := host.Env().Set(name, locale); err != nil {
			return e.failure(d, fmt.Errorf("set %s: %w", name, err), -1)
		}
		changed = append(changed, name)
	}

	if !ran && len(changed) == 0 {
		return NewOutcome(d.ID(), StatusSkipped).
			WithDetail(locale + " already generated and exported")
	}

	detail := locale
	if ran {
		detail += " generated"
	}
	if len(changed) > 0 {
		detail += ", exported " + strings.Join(changed, " ")
	}
	return NewOutcome(d.ID(), StatusSuccess).WithDetail(detail)
}

// checkLocaleTag validates the language portion of a locale name using
// BCP 47 parsing. The C and POSIX locales are host builtins with no tag.
func checkLocaleTag(locale string) error {
	base := locale
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	switch strings.ToUpper(base) {
	case "C", "POSIX":
		return nil
	}
	if _, err := language.Parse(strings.ReplaceAll(base, "_", "-")); err != nil {
		return fmt.Errorf("%w: %q: %v", validation.ErrInvalidLocale, locale, err)
	}
	return nil
}
