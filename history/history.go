// Package history records successful workflow dispatches in a local
// SQLite database so past runs can be reviewed from the UI.
package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the dispatch history database.
type DB struct {
	db *sql.DB
}

// Entry is one recorded dispatch.
type Entry struct {
	Repo       string
	Workflow   string
	Ref        string
	Inputs     map[string]string
	RunID      uint64
	Dispatched time.Time
}

// DefaultPath returns ~/.config/lazy-dispatchrr/history.db, honoring
// XDG_CONFIG_HOME when set.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lazy-dispatchrr", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("lazy-dispatchrr", "history.db")
	}
	return filepath.Join(home, ".config", "lazy-dispatchrr", "history.db")
}

// Open opens (creating if necessary) the history database.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS dispatches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		repo TEXT NOT NULL,
		workflow TEXT NOT NULL,
		ref TEXT NOT NULL,
		inputs TEXT NOT NULL DEFAULT '{}',
		run_id INTEGER NOT NULL DEFAULT 0,
		dispatched_at INTEGER NOT NULL
	)`); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &DB{db: sqlDB}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Record stores one dispatch.
func (d *DB) Record(e Entry) error {
	inputs, err := json.Marshal(e.Inputs)
	if err != nil {
		return err
	}
	when := e.Dispatched
	if when.IsZero() {
		when = time.Now()
	}
	_, err = d.db.Exec(
		`INSERT INTO dispatches (repo, workflow, ref, inputs, run_id, dispatched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Repo, e.Workflow, e.Ref, string(inputs), e.RunID, when.Unix(),
	)
	return err
}

// SetRunID backfills the run id on the most recent dispatch for a
// repo/workflow pair, once the id has been resolved.
func (d *DB) SetRunID(repo, workflow string, runID uint64) error {
	_, err := d.db.Exec(
		`UPDATE dispatches SET run_id = ?
		 WHERE id = (SELECT id FROM dispatches
		             WHERE repo = ? AND workflow = ?
		             ORDER BY dispatched_at DESC, id DESC LIMIT 1)`,
		runID, repo, workflow,
	)
	return err
}

// Recent returns up to n dispatches for a repository, newest first.
func (d *DB) Recent(repo string, n int) ([]Entry, error) {
	rows, err := d.db.Query(
		`SELECT workflow, ref, inputs, run_id, dispatched_at
		 FROM dispatches WHERE repo = ?
		 ORDER BY dispatched_at DESC, id DESC LIMIT ?`,
		repo, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			inputs string
			ts     int64
		)
		if err := rows.Scan(&e.Workflow, &e.Ref, &inputs, &e.RunID, &ts); err != nil {
			return nil, err
		}
		e.Repo = repo
		e.Dispatched = time.Unix(ts, 0)
		if err := json.Unmarshal([]byte(inputs), &e.Inputs); err != nil {
			// Corrupted row; skip it rather than fail the whole listing.
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
