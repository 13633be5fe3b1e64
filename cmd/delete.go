package cmd

import (
	"fmt"
	"strconv"

	"github.com/ice1217/BardSpeak/db"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a transformation from history",
	Long:  `Delete a recorded transformation by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := db.DeleteTransformation(database, id); err != nil {
		return fmt.Errorf("error deleting transformation: %v", err)
	}

	fmt.Printf("Transformation %d deleted successfully!\n", id)
	return nil
}
