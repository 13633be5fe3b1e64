package cmd

import (
	"fmt"
	"strconv"

	"github.com/ice1217/BardSpeak/db"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a past transformation",
	Long:  `Display the full input and output of a recorded transformation by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID: %v", err)
	}

	dbPath, err := getDBPath()
	if err != nil {
		return fmt.Errorf("error getting database path: %v", err)
	}
	database, err := db.InitDB(dbPath)
	if err != nil {
		return fmt.Errorf("error initializing database: %v", err)
	}
	defer database.Close()

	record, err := db.GetTransformation(database, id)
	if err != nil {
		return fmt.Errorf("error retrieving transformation: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nTransformation %d (%s)\n", record.ID, record.CreatedAt.Format(db.DateFormat))
	fmt.Fprintf(out, "Model: %s @ %s\n\n", record.Model, record.Host)
	fmt.Fprintf(out, "Modern:        %s\n", record.Input)
	fmt.Fprintf(out, "Shakespearean: %s\n", record.Output)

	return nil
}
