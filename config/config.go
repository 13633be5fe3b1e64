// Package config resolves the Ollama connection settings for bardspeak.
// Values are resolved in order: environment variables, the saved config
// file, then built-in defaults. Command-line flags are applied on top by
// the cmd layer.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultHost    = "http://localhost:11434"
	DefaultModel   = "llama2"
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings for a single invocation. It is read once at
// startup and never mutated afterwards.
type Config struct {
	Host    string
	Model   string
	Timeout time.Duration
}

// Load builds a Config from the config file at path (if it exists) and the
// OLLAMA_HOST, OLLAMA_MODEL and OLLAMA_TIMEOUT environment variables.
// A .env file in the working directory is loaded first when present.
func Load(path string) *Config {
	// Missing .env is the normal case for an installed binary.
	_ = godotenv.Load()

	cfg := &Config{
		Host:    DefaultHost,
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
	}

	applyFile(cfg, path)

	cfg.Host = getEnv("OLLAMA_HOST", cfg.Host)
	cfg.Model = getEnv("OLLAMA_MODEL", cfg.Model)
	if raw, ok := os.LookupEnv("OLLAMA_TIMEOUT"); ok {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	cfg.Host = strings.TrimRight(cfg.Host, "/")
	return cfg
}

// Save writes the config file in key=value format, creating the parent
// directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	content := fmt.Sprintf("host=%s\nmodel=%s\ntimeout=%s\n", cfg.Host, cfg.Model, cfg.Timeout)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// applyFile overlays key=value pairs from the config file onto cfg.
// Unknown keys and malformed lines are ignored.
func applyFile(cfg *Config, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch strings.TrimSpace(key) {
		case "host":
			cfg.Host = value
		case "model":
			cfg.Model = value
		case "timeout":
			if d, err := time.ParseDuration(value); err == nil && d > 0 {
				cfg.Timeout = d
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
