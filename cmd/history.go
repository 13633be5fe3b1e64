package cmd

import (
	"fmt"

	"github.com/ice1217/BardSpeak/db"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past transformations",
	Long:  `Display a list of all transformations recorded in the history database.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, err := getDBPath()
	if err != nil {
		return fmt.Errorf("error getting database path: %v", err)
	}
	database, err := db.InitDB(dbPath)
	if err != nil {
		return fmt.Errorf("error initializing database: %v", err)
	}
	defer database.Close()

	records, err := db.ListTransformations(database)
	if err != nil {
		return fmt.Errorf("error listing transformations: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No transformations found.")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"ID", "Date", "Model", "Sentence"})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")

	for _, record := range records {
		table.Append([]string{
			fmt.Sprintf("%d", record.ID),
			record.CreatedAt.Format(db.DateFormat),
			record.Model,
			excerpt(record.Input, 48),
		})
	}

	table.Render()
	return nil
}

// excerpt shortens s to at most n runes, appending "..." when truncated.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
