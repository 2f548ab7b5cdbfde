// Package sqlite stores glossaries in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createGlossariesTable = `
	CREATE TABLE IF NOT EXISTS glossaries (
		name       TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// Open prepares a handle for the database at path. The file is opened on
// first use, so a missing or unwritable path surfaces from Fetch or Save.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return conn, nil
}

// EnsureSchema creates the glossaries table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createGlossariesTable); err != nil {
		return fmt.Errorf("create glossaries table: %w", err)
	}
	return nil
}
