package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DatabaseFile is the sqlite file name inside the data directory.
const DatabaseFile = "mindwell.db"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL,
		encryption_key TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		body TEXT NOT NULL,
		sender TEXT NOT NULL,
		mood TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		encrypted INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (profile_id) REFERENCES profiles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		mood INTEGER NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		encrypted INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (profile_id) REFERENCES profiles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		encrypted INTEGER NOT NULL DEFAULT 1,
		FOREIGN KEY (profile_id) REFERENCES profiles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		type TEXT NOT NULL,
		duration INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (profile_id) REFERENCES profiles(id)
	)`,
	`CREATE TABLE IF NOT EXISTS badges (
		profile_id TEXT NOT NULL,
		badge_id TEXT NOT NULL,
		unlocked_at TIMESTAMP NOT NULL,
		PRIMARY KEY (profile_id, badge_id),
		FOREIGN KEY (profile_id) REFERENCES profiles(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_profile ON messages(profile_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_profile ON sessions(profile_id, created_at)`,
}

// OpenDatabase opens (creating if needed) the sqlite database in dataDir
// and applies the schema.
func OpenDatabase(dataDir string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	path := filepath.Join(dataDir, DatabaseFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "open", Err: fmt.Errorf("ping failed: %w", err)}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return &StoreError{Op: "migrate", Err: err}
		}
	}
	return nil
}

// DefaultDataDir returns ~/.mindwell unless overridden by config or flag.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".mindwell"), nil
}
