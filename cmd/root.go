// Package cmd implements the command-line interface for bardspeak.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ice1217/BardSpeak/config"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bardspeak",
	Short: "A CLI application that transforms modern English into Shakespearean English.",
	Long: `A CLI application that transforms modern English sentences into Shakespearean English.
It uses a local LLM via the Ollama API and keeps a history of past transformations in SQLite.`,
}

var (
	verbose bool

	flagHost    string
	flagModel   string
	flagTimeout string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Disable the built-in help command since we have our own
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "no-help",
		Hidden: true,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// verbosef prints progress information to stderr when --verbose is set.
func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func getConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(configDir, "bardspeak"), nil
}

func getConfigFile() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config"), nil
}

// resolveConfig loads the saved config plus environment variables and
// applies any command-line flag overrides on top.
func resolveConfig() (*config.Config, error) {
	configFile, err := getConfigFile()
	if err != nil {
		return nil, err
	}

	cfg := config.Load(configFile)

	if flagHost != "" {
		cfg.Host = strings.TrimRight(flagHost, "/")
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q: use a duration like 30s or 2m", flagTimeout)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

func getDBPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}

	pathFile := filepath.Join(configDir, "dbpath")

	// Try to read a configured path
	if content, err := os.ReadFile(pathFile); err == nil {
		if path := strings.TrimSpace(string(content)); path != "" {
			return path, nil
		}
	}

	// Fall back to the default location next to the config file
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return filepath.Join(configDir, "history.db"), nil
}
