package diagnostics

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists diagnostics to a SQLite database, one row per finding.
// Batch runs of the CLI use it to keep results across invocations.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open diagnostics store: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS diagnostics (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		code     TEXT NOT NULL,
		severity TEXT NOT NULL,
		file     TEXT NOT NULL,
		line     INTEGER NOT NULL,
		col      INTEGER NOT NULL,
		message  TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init diagnostics store: %w", err)
	}
	return &Store{db: db}, nil
}

// Write appends the diagnostics to the store in one transaction.
func (s *Store) Write(diags []*Diagnostic) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO diagnostics (code, severity, file, line, col, message)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("write diagnostics: %w", err)
	}
	defer stmt.Close()
	for _, d := range diags {
		if _, err := stmt.Exec(string(d.Code), d.Severity.String(), d.Pos.File, d.Pos.Line, d.Pos.Column, d.Message); err != nil {
			tx.Rollback()
			return fmt.Errorf("write diagnostics: %w", err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored diagnostics.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM diagnostics`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count diagnostics: %w", err)
	}
	return n, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }
