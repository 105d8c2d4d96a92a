package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the embedded store connection. SQLite allows one writer at a
// time; mu serializes mutating statements so concurrent handlers cannot
// interleave partial writes on the same file.
type DB struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Open opens (or creates) the store file and runs the idempotent schema
// initialization. WAL keeps readers from blocking behind the writer.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", path, err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) initSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nik TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			department TEXT NOT NULL,
			position TEXT NOT NULL,
			base_salary INTEGER NOT NULL,
			is_active INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize employees table: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
