package config

import "fmt"

// UserError is a configuration error with enough context for a CLI user
// to fix it without reading a stack trace.
type UserError struct {
	Message    string
	Context    string
	Suggestion string
	Underlying error
}

// Error returns the formatted message.
func (e *UserError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Underlying
}

// NewManifestNotFoundError creates an error for a missing manifest file.
func NewManifestNotFoundError(path string) *UserError {
	return &UserError{
		Message:    "manifest file not found",
		Context:    path,
		Suggestion: "Create a rigup.yaml describing the steps to provision, or point --config at an existing manifest.",
	}
}

// NewYAMLParseError creates an error for malformed manifest YAML.
func NewYAMLParseError(path string, err error) *UserError {
	return &UserError{
		Message:    "manifest is not valid YAML",
		Context:    path,
		Suggestion: "Check indentation and quoting near the location the parser reports.",
		Underlying: err,
	}
}

// NewTOMLParseError creates an error for malformed settings TOML.
func NewTOMLParseError(path string, err error) *UserError {
	return &UserError{
		Message:    "settings file is not valid TOML",
		Context:    path,
		Suggestion: "Check the key syntax; settings accept policy, timeout_seconds and mask.",
		Underlying: err,
	}
}
