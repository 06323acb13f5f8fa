// Package ledger durably records triage-observed events in a SQLite
// database, so a restarted daemon doesn't lose its observed-triage count.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"foors"

	_ "modernc.org/sqlite"
)

// Ledger implements sim.Ledger against a SQLite database.
type Ledger struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS observed_triages (
			triage_id  TEXT PRIMARY KEY,
			observed_at TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// RecordObserved inserts triageID if it hasn't already been recorded.
func (l *Ledger) RecordObserved(triageID foors.TriageID) {
	_, _ = l.db.Exec(
		`INSERT OR IGNORE INTO observed_triages (triage_id, observed_at) VALUES (?, ?)`,
		string(triageID), time.Now().UTC().Format(time.RFC3339Nano),
	)
}

// Count returns the total number of distinct triages ever recorded.
func (l *Ledger) Count() (int, error) {
	var n int
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM observed_triages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count observed triages: %w", err)
	}
	return n, nil
}
