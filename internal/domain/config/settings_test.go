package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rigup.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
policy = "best-effort"
timeout_seconds = 600
mask = "***"
work_dir = "/srv/build"
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "best-effort", settings.Policy)
	assert.Equal(t, 600, settings.TimeoutSeconds)
	assert.Equal(t, 10*time.Minute, settings.Timeout())
	assert.Equal(t, "***", settings.Mask)
	assert.Equal(t, "/srv/build", settings.WorkDir)
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), settings)
	assert.Equal(t, "stop", settings.Policy)
	assert.Equal(t, ".", settings.WorkDir)
	assert.Zero(t, settings.Timeout())
}

func TestLoadSettings_PartialFileBackfillsDefaults(t *testing.T) {
	path := writeSettings(t, `timeout_seconds = 30`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "stop", settings.Policy)
	assert.Equal(t, ".", settings.WorkDir)
	assert.Equal(t, 30*time.Second, settings.Timeout())
}

func TestLoadSettings_InvalidTOML(t *testing.T) {
	path := writeSettings(t, `policy = [unclosed`)

	_, err := LoadSettings(path)
	require.Error(t, err)

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.Message, "TOML")
	assert.NotEmpty(t, userErr.Suggestion)
}
