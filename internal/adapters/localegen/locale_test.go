package localegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tedd-an/rigup/internal/ports"
	"github.com/tedd-an/rigup/internal/testutil/mocks"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en_US.UTF-8": "en_us.utf8",
		"en_US.utf8":  "en_us.utf8",
		"C.UTF-8":     "c.utf8",
		"de_DE":       "de_de",
		"POSIX":       "posix",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "Normalize(%q)", input)
	}
}

func TestQueryGenerated(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("locale", []string{"-a"}, ports.CommandResult{
		Stdout: "C\nC.utf8\nPOSIX\nen_US.utf8\n",
	})

	gen := NewLocaleGen(runner)

	// `locale -a` prints en_US.utf8 for the canonical en_US.UTF-8 name.
	ok, err := gen.QueryGenerated(context.Background(), "en_US.UTF-8")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gen.QueryGenerated(context.Background(), "de_DE.UTF-8")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerate(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"locale-gen", "de_DE.UTF-8"}, ports.CommandResult{})

	gen := NewLocaleGen(runner)
	code, err := gen.Generate(context.Background(), "de_DE.UTF-8")
	require.NoError(t, err)
	assert.Zero(t, code)
}

func TestGenerate_PropagatesExitCode(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"locale-gen", "xx_XX"}, ports.CommandResult{
		ExitCode: 1,
		Stderr:   "Error: invalid locale name",
	})

	gen := NewLocaleGen(runner)
	code, err := gen.Generate(context.Background(), "xx_XX")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}
