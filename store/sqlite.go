// ABOUTME: SQLite-backed slot store holding every profile's editor slots in one table.
// ABOUTME: Provides get, upsert, delete, and listing with a ULID revision per write.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SqliteStore persists slots in a SQLite database.
type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens or creates a slot database at the given path.
// Runs migrations to ensure the schema is up to date.
func OpenSqlite(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			rev TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (profile, key)
		);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

// Close closes the SQLite database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key for profile.
func (s *SqliteStore) Get(profile, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM slots WHERE profile = ? AND key = ?", profile, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query slot %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key for profile with a fresh revision.
func (s *SqliteStore) Set(profile, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (profile, key, value, rev, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(profile, key) DO UPDATE SET
			value = excluded.value,
			rev = excluded.rev,
			updated_at = excluded.updated_at`,
		profile,
		key,
		value,
		NewRev(),
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Remove deletes key for profile. Removing a missing key is not an error.
func (s *SqliteStore) Remove(profile, key string) error {
	_, err := s.db.Exec("DELETE FROM slots WHERE profile = ? AND key = ?", profile, key)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}

// Profiles lists profiles holding at least one slot, sorted.
func (s *SqliteStore) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT profile FROM slots ORDER BY profile ASC")
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Entries lists the slots of a profile ordered by key.
func (s *SqliteStore) Entries(profile string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT profile, key, value, rev, updated_at
		 FROM slots WHERE profile = ? ORDER BY key ASC`, profile)
	if err != nil {
		return nil, fmt.Errorf("query slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updated string
		if err := rows.Scan(&e.Profile, &e.Key, &e.Value, &e.Rev, &updated); err != nil {
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		e.UpdatedAt, err = time.Parse(timeLayout, updated)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at for %s: %w", e.Key, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
