// Package secret provides irreversible redaction of credential material.
// Anything that can observe step execution (outcome details, error
// messages, log sinks) is routed through a Redactor so that no code
// path can emit a raw secret.
package secret

import (
	"errors"
	"strings"
	"sync"
)

// DefaultMask is the token substituted for secret material.
const DefaultMask = "[REDACTED]"

// Redactor replaces every registered secret substring with a mask.
// The zero-secret Redactor passes text through unchanged, so callers
// never need to branch on whether secrets exist.
type Redactor struct {
	mu      sync.RWMutex
	mask    string
	secrets []string
}

// NewRedactor creates a Redactor with the given mask. An empty mask
// falls back to DefaultMask.
func NewRedactor(mask string, secrets ...string) *Redactor {
	if mask == "" {
		mask = DefaultMask
	}
	r := &Redactor{mask: mask}
	r.Add(secrets...)
	return r
}

// Add registers additional secret values. Empty values are ignored;
// masking the empty string would corrupt all output.
func (r *Redactor) Add(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range values {
		if v == "" {
			continue
		}
		r.secrets = append(r.secrets, v)
	}
}

// Mask returns the mask token.
func (r *Redactor) Mask() string {
	return r.mask
}

// Scrub returns s with every registered secret replaced by the mask.
func (r *Redactor) Scrub(s string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sec := range r.secrets {
		s = strings.ReplaceAll(s, sec, r.mask)
	}
	return s
}

// ScrubError returns an error whose message has been scrubbed. The
// original error is returned untouched when its message is already
// clean. A scrubbed error is flattened to a plain message: keeping the
// wrap chain would let %+v or Unwrap resurface the raw secret.
func (r *Redactor) ScrubError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	scrubbed := r.Scrub(msg)
	if scrubbed == msg {
		return err
	}
	return errors.New(scrubbed)
}

// ScrubFunc returns Scrub as a standalone function, for wiring into
// logger decorators.
func (r *Redactor) ScrubFunc() func(string) string {
	return r.Scrub
}
