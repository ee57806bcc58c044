// Package validation provides input validation guards that prevent
// command injection and malformed identifiers from reaching the host
// collaborators.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Common validation errors.
var (
	ErrEmptyInput         = errors.New("input cannot be empty")
	ErrInvalidPackageName = errors.New("invalid package name")
	ErrInvalidEnvVarName  = errors.New("invalid environment variable name")
	ErrInvalidLocale      = errors.New("invalid locale name")
	ErrInvalidRemoteName  = errors.New("invalid git remote name")
	ErrNewlineInjection   = errors.New("newline injection detected")
)

// Compiled patterns, one per identifier class.
var (
	// packageNameRegex matches valid package names: alphanumeric with
	// dots, hyphens, underscores and plus. Examples: "git", "g++",
	// "python3.11", "locales-all".
	packageNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`)

	// envVarRegex matches POSIX environment variable names.
	envVarRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// localeRegex matches locale identifiers such as "en_US.UTF-8",
	// "C.UTF-8" or "de_DE".
	localeRegex = regexp.MustCompile(`^[A-Za-z]{1,8}(_[A-Za-z]{2,8})?(\.[A-Za-z0-9-]+)?$`)

	// remoteNameRegex matches git remote names such as "origin" or
	// "upstream".
	remoteNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)
)

// ValidatePackageName checks that name is a safe package identifier.
func ValidatePackageName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !packageNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}
	return nil
}

// ValidateEnvVarName checks that name is a valid environment variable name.
func ValidateEnvVarName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !envVarRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidEnvVarName, name)
	}
	return nil
}

// ValidateLocale checks that locale looks like a locale identifier.
func ValidateLocale(locale string) error {
	if locale == "" {
		return ErrEmptyInput
	}
	if !localeRegex.MatchString(locale) {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return nil
}

// ValidateRemoteName checks that name is a valid git remote name.
func ValidateRemoteName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !remoteNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidRemoteName, name)
	}
	return nil
}

// ValidateConfigValue rejects values that could smuggle extra lines into
// a config file or command.
func ValidateConfigValue(value string) error {
	if strings.ContainsAny(value, "\n\r") {
		return ErrNewlineInjection
	}
	return nil
}
