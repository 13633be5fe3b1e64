package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ice1217/BardSpeak/cmd/ollama"
	"github.com/ice1217/BardSpeak/db"

	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform [sentence]",
	Short: "Transform a sentence into Shakespearean English",
	Long: `Transform a modern English sentence into Shakespearean English.
Sends the sentence to the configured Ollama model and prints the rewrite.
Successful transformations are recorded in the local history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTransform,
}

var noSave bool

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringVar(&flagHost, "host", "", "Ollama API host URL (overrides OLLAMA_HOST)")
	transformCmd.Flags().StringVar(&flagModel, "model", "", "Ollama model to use (overrides OLLAMA_MODEL)")
	transformCmd.Flags().StringVar(&flagTimeout, "timeout", "", "request timeout, e.g. 45s (overrides OLLAMA_TIMEOUT)")
	transformCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the transformation in history")
}

func runTransform(cmd *cobra.Command, args []string) error {
	sentence := strings.Join(args, " ")

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	verbosef("Original sentence: %s", sentence)
	verbosef("Ollama host: %s", cfg.Host)
	verbosef("Using model: %s", cfg.Model)
	verbosef("Transforming...")

	client := ollama.New(cfg.Host, cfg.Model, cfg.Timeout)
	result, err := client.Transform(cmd.Context(), sentence)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)

	if !noSave {
		saveToHistory(sentence, result, cfg.Model, cfg.Host)
	}
	return nil
}

// saveToHistory records the exchange. Failures only warn: the transformation
// already succeeded and its output has been printed.
func saveToHistory(input, output, model, host string) {
	dbPath, err := getDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save to history: %v\n", err)
		return
	}

	database, err := db.InitDB(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save to history: %v\n", err)
		return
	}
	defer database.Close()

	id, err := db.SaveTransformation(database, db.Transformation{
		Input:  input,
		Output: output,
		Model:  model,
		Host:   host,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save to history: %v\n", err)
		return
	}

	verbosef("Saved to history with ID %d", id)
}
