package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, no CGO required
)

// DatabaseFile is the SQLite file created under the configured path.
const DatabaseFile = "life.db"

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLite stores each document as one row of the collections table.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) <basePath>/life.db.
func OpenSQLite(basePath string) (*SQLite, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	path := filepath.Join(basePath, DatabaseFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Read(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: %s: %w", key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQLite) Write(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Path is the database file location.
func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
