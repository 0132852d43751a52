package sqlitedriver

import (
	"database/sql"
	"fmt"
	"strings"
)

// DriverName is the database/sql name both builds register.
const DriverName = "sqlite3"

// Open opens dsn with the registered SQLite driver. In-memory databases are
// private to one connection, so the pool is pinned to a single connection
// for them.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("sqlite DSN is empty")
	}
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if IsMemory(dsn) {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// IsMemory reports whether dsn names an in-memory database.
func IsMemory(dsn string) bool {
	return dsn == ":memory:" ||
		strings.HasPrefix(dsn, "file::memory:") ||
		strings.Contains(dsn, "mode=memory")
}
