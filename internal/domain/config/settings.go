package config

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings are operator defaults for the engine, loaded from an
// optional TOML file. Command-line flags override them.
type Settings struct {
	// Policy is the default failure policy: "stop" or "best-effort".
	Policy string `toml:"policy"`
	// TimeoutSeconds bounds the whole run; 0 disables the deadline.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// Mask is the redaction token substituted for secret material.
	Mask string `toml:"mask"`
	// WorkDir is the default git repository directory.
	WorkDir string `toml:"work_dir"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Policy:  "stop",
		WorkDir: ".",
	}
}

// Timeout returns the configured run deadline as a duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LoadSettings reads settings from path. A missing file is not an
// error; the defaults apply.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), NewTOMLParseError(path, err)
	}

	if settings.Policy == "" {
		settings.Policy = "stop"
	}
	if settings.WorkDir == "" {
		settings.WorkDir = "."
	}

	return settings, nil
}
