package validation

import (
	"errors"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	valid := []string{"git", "g++", "python3.11", "locales-all", "lib_x", "7zip"}
	for _, name := range valid {
		if err := ValidatePackageName(name); err != nil {
			t.Errorf("ValidatePackageName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"git;rm", "pkg name", "$(whoami)", "-leading", "pkg\nname", "../etc"}
	for _, name := range invalid {
		if err := ValidatePackageName(name); !errors.Is(err, ErrInvalidPackageName) {
			t.Errorf("ValidatePackageName(%q) = %v, want ErrInvalidPackageName", name, err)
		}
	}

	if err := ValidatePackageName(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty name error = %v, want ErrEmptyInput", err)
	}
}

func TestValidateEnvVarName(t *testing.T) {
	valid := []string{"PATH", "HTTP_PROXY", "_private", "Lc_all", "X1"}
	for _, name := range valid {
		if err := ValidateEnvVarName(name); err != nil {
			t.Errorf("ValidateEnvVarName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"1BAD", "HAS-DASH", "HAS SPACE", "A=B", "X\nY"}
	for _, name := range invalid {
		if err := ValidateEnvVarName(name); !errors.Is(err, ErrInvalidEnvVarName) {
			t.Errorf("ValidateEnvVarName(%q) = %v, want ErrInvalidEnvVarName", name, err)
		}
	}
}

func TestValidateLocale(t *testing.T) {
	valid := []string{"en_US.UTF-8", "C.UTF-8", "de_DE", "POSIX", "zh_Hans.utf8"}
	for _, locale := range valid {
		if err := ValidateLocale(locale); err != nil {
			t.Errorf("ValidateLocale(%q) = %v, want nil", locale, err)
		}
	}

	invalid := []string{"en US", "en_US;reboot", "en_US.UTF 8", "_US", "en_US.UTF-8\n"}
	for _, locale := range invalid {
		if err := ValidateLocale(locale); !errors.Is(err, ErrInvalidLocale) {
			t.Errorf("ValidateLocale(%q) = %v, want ErrInvalidLocale", locale, err)
		}
	}
}

func TestValidateRemoteName(t *testing.T) {
	valid := []string{"origin", "upstream", "my-fork", "r2.d2"}
	for _, name := range valid {
		if err := ValidateRemoteName(name); err != nil {
			t.Errorf("ValidateRemoteName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"-bad", "has space", "a/b", "name\n"}
	for _, name := range invalid {
		if err := ValidateRemoteName(name); !errors.Is(err, ErrInvalidRemoteName) {
			t.Errorf("ValidateRemoteName(%q) = %v, want ErrInvalidRemoteName", name, err)
		}
	}
}

func TestValidateConfigValue(t *testing.T) {
	if err := ValidateConfigValue("CI Bot <ci@example.com>"); err != nil {
		t.Errorf("plain value error = %v", err)
	}

	for _, value := range []string{"a\nb", "a\rb"} {
		if err := ValidateConfigValue(value); !errors.Is(err, ErrNewlineInjection) {
			t.Errorf("ValidateConfigValue(%q) = %v, want ErrNewlineInjection", value, err)
		}
	}
}
