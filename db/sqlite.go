package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Config struct {
	File string
}

// Initialize opens the SQLite database file and verifies the connection
func Initialize(cfg Config) (*sql.DB, error) {
	// busy_timeout lets concurrent requests wait out the single writer
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.File)

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = database.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return database, nil
}
