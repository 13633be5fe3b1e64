package cmd

import (
	"fmt"

	"github.com/ice1217/BardSpeak/cmd/ollama"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models installed on the Ollama host",
	Long:  `Query the Ollama host for its installed models and display them.`,
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().StringVar(&flagHost, "host", "", "Ollama API host URL (overrides OLLAMA_HOST)")
	modelsCmd.Flags().StringVar(&flagTimeout, "timeout", "", "request timeout, e.g. 45s (overrides OLLAMA_TIMEOUT)")
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	verbosef("Ollama host: %s", cfg.Host)

	client := ollama.New(cfg.Host, cfg.Model, cfg.Timeout)
	models, err := client.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	if len(models) == 0 {
		fmt.Println("No models installed.")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Size", "Modified"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")

	for _, model := range models {
		modified := ""
		if !model.ModifiedAt.IsZero() {
			modified = model.ModifiedAt.Format("2006-01-02")
		}
		table.Append([]string{model.Name, formatSize(model.Size), modified})
	}

	table.Render()
	return nil
}

// formatSize renders a byte count the way ollama's own CLI does.
func formatSize(bytes int64) string {
	const gb = 1 << 30
	const mb = 1 << 20

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
