package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to Postgres through the pgx database/sql driver.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}

// OpenSQLite opens (and creates if needed) the SQLite database at path.
// ":memory:" gives a private in-memory database; the pool is pinned to one
// connection so that every query sees the same database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", path, err)
	}

	return db, nil
}

// OpenStore opens Postgres when databaseURL is non-empty and the SQLite file
// at sqlitePath otherwise, returning the matching placeholder dialect.
func OpenStore(databaseURL, sqlitePath string) (*sql.DB, Dialect, error) {
	if databaseURL != "" {
		conn, err := Open(databaseURL)
		return conn, Postgres, err
	}

	conn, err := OpenSQLite(sqlitePath)
	return conn, SQLite, err
}
