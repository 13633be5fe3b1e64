package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ice1217/BardSpeak/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.InitDB(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database
}

func TestSaveAndGetTransformation(t *testing.T) {
	database := openTestDB(t)

	id, err := db.SaveTransformation(database, db.Transformation{
		Input:  "Hello, how are you?",
		Output: "Hark, how farest thou?",
		Model:  "llama2",
		Host:   "http://localhost:11434",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	record, err := db.GetTransformation(database, id)
	require.NoError(t, err)

	assert.Equal(t, "Hello, how are you?", record.Input)
	assert.Equal(t, "Hark, how farest thou?", record.Output)
	assert.Equal(t, "llama2", record.Model)
	assert.Equal(t, "http://localhost:11434", record.Host)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestGetTransformation_NotFound(t *testing.T) {
	database := openTestDB(t)

	_, err := db.GetTransformation(database, 42)
	assert.ErrorIs(t, err, db.ErrNoRecords)
}

func TestListTransformations(t *testing.T) {
	database := openTestDB(t)

	records, err := db.ListTransformations(database)
	require.NoError(t, err)
	assert.Empty(t, records)

	first, err := db.SaveTransformation(database, db.Transformation{
		Input: "Good morning", Output: "Good morrow", Model: "llama2", Host: "http://localhost:11434",
	})
	require.NoError(t, err)
	second, err := db.SaveTransformation(database, db.Transformation{
		Input: "Goodbye", Output: "Fare thee well", Model: "mistral", Host: "http://localhost:11434",
	})
	require.NoError(t, err)

	records, err = db.ListTransformations(database)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, second, records[0].ID)
	assert.Equal(t, first, records[1].ID)
}

func TestDeleteTransformation(t *testing.T) {
	database := openTestDB(t)

	id, err := db.SaveTransformation(database, db.Transformation{
		Input: "Hello", Output: "Hail", Model: "llama2", Host: "http://localhost:11434",
	})
	require.NoError(t, err)

	require.NoError(t, db.DeleteTransformation(database, id))

	_, err = db.GetTransformation(database, id)
	assert.ErrorIs(t, err, db.ErrNoRecords)
}

func TestDeleteTransformation_NotFound(t *testing.T) {
	database := openTestDB(t)

	err := db.DeleteTransformation(database, 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
