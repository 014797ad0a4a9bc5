// Package sqlitedb opens the application's SQLite database with the
// settings every store in this repo relies on.
//
// WAL mode is enabled so catalog reads never block order writes. We use
// modernc.org/sqlite instead of mattn/go-sqlite3 to avoid CGO, which keeps
// Docker (Alpine) builds trivial.
package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Register the pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

// Open opens (or creates) the database file at path, creating parent
// directories as needed.
//
//	db, err := sqlitedb.Open("./data/pickup.db")
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create dir %q: %w", dir, err)
		}
	}

	// The pure-Go driver takes _pragma query parameters. WAL enables
	// concurrent readers; busy_timeout waits for locks instead of failing
	// immediately; foreign_keys enforces the order→line relationship.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	// Driver name is "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	return db, nil
}
