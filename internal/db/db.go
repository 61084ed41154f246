package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection together with its driver name, which the
// stores need to pick the right placeholder style.
type DB struct {
	*sql.DB
	driver string
}

// New opens and pings a database for the turn archive. Supported drivers are
// sqlite3 and postgres.
func New(driver, dsn string) (*DB, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver == "sqlite" {
		driver = "sqlite3"
	}
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	var sqlDB *sql.DB
	var err error
	switch driver {
	case "sqlite3":
		sqlDB, err = sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	case "postgres":
		sqlDB, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			// Retry once with SSL disabled when the DSN does not pin sslmode.
			if !containsIgnoreCase(dsn, "sslmode") {
				sqlDB.Close()
				retry := dsn
				if strings.Contains(dsn, "?") {
					retry += "&sslmode=disable"
				} else {
					retry += "?sslmode=disable"
				}
				sqlDB, err = sql.Open("postgres", retry)
				if err != nil {
					return nil, fmt.Errorf("failed to open database: %w", err)
				}
			}
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "sqlite3" {
		// A single connection keeps :memory: databases coherent.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
	}

	return &DB{DB: sqlDB, driver: driver}, nil
}

// Driver returns the normalized driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate ensures the turns table exists. It is safe to run on every start.
func (db *DB) Migrate() error {
	var stmts []string
	switch db.driver {
	case "sqlite3":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS turns (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id TEXT NOT NULL,
				user_id TEXT NOT NULL,
				role TEXT NOT NULL,
				text TEXT NOT NULL,
				created_at INTEGER NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_turns_user ON turns(user_id)`,
		}
	case "postgres":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS turns (
				id BIGSERIAL PRIMARY KEY,
				run_id TEXT NOT NULL,
				user_id TEXT NOT NULL,
				role TEXT NOT NULL,
				text TEXT NOT NULL,
				created_at BIGINT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_turns_user ON turns(user_id)`,
		}
	default:
		return fmt.Errorf("unsupported driver for migration: %s", db.driver)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate (%s): %w", db.driver, err)
		}
	}
	return nil
}

// containsIgnoreCase returns true if s contains substr (case-insensitive)
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
