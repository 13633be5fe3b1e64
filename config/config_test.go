package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ice1217/BardSpeak/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	t.Setenv("OLLAMA_MODEL", "")
	t.Setenv("OLLAMA_TIMEOUT", "")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, config.DefaultHost, cfg.Host)
	assert.Equal(t, config.DefaultModel, cfg.Model)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	t.Setenv("OLLAMA_MODEL", "")
	t.Setenv("OLLAMA_TIMEOUT", "")

	path := writeConfigFile(t, "host=http://ollama.local:11434\nmodel=mistral\ntimeout=90s\n")

	cfg := config.Load(path)

	assert.Equal(t, "http://ollama.local:11434", cfg.Host)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "host=http://file-host:11434\nmodel=file-model\n")

	t.Setenv("OLLAMA_HOST", "http://env-host:11434")
	t.Setenv("OLLAMA_MODEL", "env-model")
	t.Setenv("OLLAMA_TIMEOUT", "2m")

	cfg := config.Load(path)

	assert.Equal(t, "http://env-host:11434", cfg.Host)
	assert.Equal(t, "env-model", cfg.Model)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoad_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://localhost:11434/")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, "http://localhost:11434", cfg.Host)
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("OLLAMA_TIMEOUT", "soon")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
}

func TestLoad_IgnoresMalformedLines(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "")

	path := writeConfigFile(t, "# comment\nnot a pair\nmodel=phi3\nunknown=x\n")

	cfg := config.Load(path)

	assert.Equal(t, "phi3", cfg.Model)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	t.Setenv("OLLAMA_MODEL", "")
	t.Setenv("OLLAMA_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "nested", "config")
	saved := &config.Config{
		Host:    "http://localhost:11434",
		Model:   "mistral",
		Timeout: 45 * time.Second,
	}
	require.NoError(t, config.Save(path, saved))

	cfg := config.Load(path)

	assert.Equal(t, saved.Host, cfg.Host)
	assert.Equal(t, saved.Model, cfg.Model)
	assert.Equal(t, saved.Timeout, cfg.Timeout)
}
