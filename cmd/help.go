package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show help for bardspeak commands",
	Long:  `Display detailed help information for all available bardspeak commands.`,
	RunE:  runHelp,
}

func init() {
	rootCmd.AddCommand(helpCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	fmt.Println(`
BardSpeak - Shakespearean English Transformer

Available Commands:
  transform [sentence]  Transform a sentence into Shakespearean English
    Usage: bardspeak transform "Hello, how are you today?"
    Flags: --host, --model, --timeout, --no-save
    Requires Ollama to be running with a compatible model installed
    (e.g. llama2, mistral).

  history               List past transformations
    Usage: bardspeak history
    Shows all recorded transformations with their IDs and dates.

  show [id]             Show a past transformation
    Usage: bardspeak show 42
    Displays the full input and output of the given record.

  delete [id]           Delete a transformation from history
    Usage: bardspeak delete 42

  models                List models installed on the Ollama host
    Usage: bardspeak models

  config                Configuration commands
    Usage: bardspeak config [command]
    Available subcommands:
      llm              Configure Ollama host, model and timeout
      db [path]        Configure history database location

  help                  Show this help message
    Usage: bardspeak help

Environment variables:
  OLLAMA_HOST     Ollama API host URL (default http://localhost:11434)
  OLLAMA_MODEL    Model used for transformations (default llama2)
  OLLAMA_TIMEOUT  Request timeout as a Go duration (default 30s)`)
	return nil
}
