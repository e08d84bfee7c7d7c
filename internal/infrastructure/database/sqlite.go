package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// ConnectSQLite opens a SQLite database with WAL journaling and foreign keys on.
// In-memory databases are pinned to a single connection so every query sees the same data.
func ConnectSQLite(dbName string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(500)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", dbName)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", dbName, err)
	}
	if strings.Contains(dbName, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
