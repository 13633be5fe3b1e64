package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short", 10))
	assert.Equal(t, "exactly-10", excerpt("exactly-10", 10))
	assert.Equal(t, "a long s...", excerpt("a long sentence that keeps going", 11))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "4.0 MB", formatSize(4<<20))
	assert.Equal(t, "3.6 GB", formatSize(3825819519))
}

func TestResolveConfig_FlagOverrides(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://env-host:11434")
	t.Setenv("OLLAMA_MODEL", "env-model")
	t.Setenv("OLLAMA_TIMEOUT", "")

	flagHost = "http://flag-host:11434/"
	flagModel = "flag-model"
	flagTimeout = "45s"
	t.Cleanup(func() { flagHost, flagModel, flagTimeout = "", "", "" })

	cfg, err := resolveConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flag-host:11434", cfg.Host)
	assert.Equal(t, "flag-model", cfg.Model)
	assert.Equal(t, "45s", cfg.Timeout.String())
}

func TestResolveConfig_InvalidTimeout(t *testing.T) {
	flagTimeout = "soon"
	t.Cleanup(func() { flagTimeout = "" })

	_, err := resolveConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}
