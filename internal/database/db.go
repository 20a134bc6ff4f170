// Package database stores kiosk settings in a local sqlite file.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Database wraps the sqlite connection.
type Database struct {
	DB     *sqlx.DB
	dbFile string
}

// Open connects to the sqlite file at path, creating it and its schema if needed.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &OpError{Op: "open", Resource: "database", Err: err}
		}
	}
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	// A single connection keeps writes strictly ordered.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, classifyOpenErr(err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug().Str("path", path).Msg("[database] opened")
	return d, nil
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return classifyOpenErr(fmt.Errorf("creating schema: %w", err))
		}
	}
	return nil
}
