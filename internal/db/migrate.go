package db

import (
	"database/sql"
	"fmt"
)

// All contains the ordered list of migrations to apply.
var All = []string{
	`CREATE TABLE imports (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL,
		imported_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE contacts (
		id         INTEGER PRIMARY KEY,
		import_id  TEXT NOT NULL REFERENCES imports(id),
		line       INTEGER NOT NULL,
		name       TEXT NOT NULL,
		surname    TEXT NOT NULL,
		address    TEXT NOT NULL,
		birthday   TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE phones (
		id         INTEGER PRIMARY KEY,
		contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		raw        TEXT NOT NULL,
		normalized TEXT NOT NULL
	)`,
	`CREATE INDEX phones_normalized ON phones(normalized)`,
}

// Migrate brings the schema up to date, one transaction per migration.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`)
	if err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return fmt.Errorf("checking schema_version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("initializing schema version: %w", err)
		}
	}

	var current int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(All); i++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i+1, err)
		}

		if _, err := tx.Exec(All[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}

		if _, err := tx.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
			tx.Rollback()
			return fmt.Errorf("updating schema version to %d: %w", i+1, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i+1, err)
		}
	}

	return nil
}
