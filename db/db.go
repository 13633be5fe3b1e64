// Package db provides database operations for the transformation history.
// It uses SQLite as the underlying storage and records every successful
// transformation together with the model and host that produced it.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DateFormat is the layout used when displaying record timestamps.
const DateFormat = "2006-01-02 15:04"

// Transformation represents one saved request/response exchange.
type Transformation struct {
	ID        int64
	Input     string
	Output    string
	Model     string
	Host      string
	CreatedAt time.Time
}

var ErrNoRecords = fmt.Errorf("no transformations found")

func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Create tables if they don't exist
	if _, err = db.Exec(GetSchema()); err != nil {
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return db, nil
}

// SaveTransformation records a successful transformation and returns its ID.
func SaveTransformation(db *sql.DB, t Transformation) (int64, error) {
	result, err := db.Exec(
		"INSERT INTO transformations (input, output, model, host) VALUES (?, ?, ?, ?)",
		t.Input,
		t.Output,
		t.Model,
		t.Host,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting transformation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert ID: %w", err)
	}

	return id, nil
}

// ListTransformations returns all saved transformations, newest first.
func ListTransformations(db *sql.DB) ([]Transformation, error) {
	rows, err := db.Query(`
		SELECT id, input, output, model, host, created_at
		FROM transformations
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Transformation
	for rows.Next() {
		var record Transformation
		err := rows.Scan(
			&record.ID,
			&record.Input,
			&record.Output,
			&record.Model,
			&record.Host,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetTransformation returns a single transformation by its ID.
func GetTransformation(db *sql.DB, id int64) (*Transformation, error) {
	var record Transformation
	err := db.QueryRow(`
		SELECT id, input, output, model, host, created_at
		FROM transformations
		WHERE id = ?`, id).Scan(
		&record.ID,
		&record.Input,
		&record.Output,
		&record.Model,
		&record.Host,
		&record.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoRecords
		}
		return nil, err
	}

	return &record, nil
}

func DeleteTransformation(db *sql.DB, id int64) error {
	result, err := db.Exec("DELETE FROM transformations WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("record with ID %d not found", id)
	}

	return nil
}

// GetSchema returns the SQLite schema for the history database.
func GetSchema() string {
	return `
	CREATE TABLE IF NOT EXISTS transformations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,         -- Unique identifier for each transformation
		input TEXT NOT NULL,                          -- Original modern English sentence
		output TEXT NOT NULL,                         -- Shakespearean rewrite returned by the model
		model TEXT NOT NULL,                          -- Model that produced the rewrite
		host TEXT NOT NULL,                           -- Ollama host the request was sent to
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP -- When this record was created
	);`
}
