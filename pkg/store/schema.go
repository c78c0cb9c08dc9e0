package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// CreateSchema creates the database schema if it doesn't exist.
func CreateSchema(db *sql.DB) error {
	if err := createSchemaVersionTable(db); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}
	if err := createStreamsTable(db); err != nil {
		return fmt.Errorf("creating streams table: %w", err)
	}
	if err := createLexemesTable(db); err != nil {
		return fmt.Errorf("creating lexemes table: %w", err)
	}
	return nil
}

func createSchemaVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion)
		return err
	}
	return nil
}

func createStreamsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS streams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			domain TEXT NOT NULL,
			filename TEXT NOT NULL,
			encoding TEXT NOT NULL
		)
	`)
	return err
}

func createLexemesTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS lexemes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stream_id INTEGER NOT NULL REFERENCES streams(id),
			ordinal INTEGER NOT NULL,
			type TEXT NOT NULL,
			number_string TEXT NOT NULL,
			number INTEGER NOT NULL,
			start_line INTEGER NOT NULL,
			start_column INTEGER NOT NULL,
			length INTEGER NOT NULL,
			end_line INTEGER NOT NULL,
			end_column INTEGER NOT NULL,
			content_kind TEXT NOT NULL,
			content_text TEXT,
			content_number INTEGER,
			content_bool INTEGER,
			name TEXT,
			data_type TEXT,
			UNIQUE(stream_id, ordinal)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_lexemes_stream_id ON lexemes(stream_id)
	`)
	return err
}
