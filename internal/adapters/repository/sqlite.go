package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const slotSchema = `
CREATE TABLE IF NOT EXISTS slots (
	name  TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// SQLiteSlot implements Slot on a sqlite database, keyed by slot name.
// This mirrors how browsers back their local storage.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// NewSQLiteSlot opens (or creates) the database at dbPath and ensures
// the slots table exists. name selects the row this slot reads and
// writes.
func NewSQLiteSlot(ctx context.Context, dbPath, name string) (*SQLiteSlot, error) {
	if dbPath == "" {
		return nil, ErrEmptyPath
	}
	if name == "" {
		return nil, ErrEmptySlotName
	}
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open slot database: %w", err)
	}
	// SQLite performs best with a single writer.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping slot database: %w", err)
	}
	if _, err := db.ExecContext(ctx, slotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLiteSlot{db: db, name: name}, nil
}

// Get reads the slot row. An absent row reports an empty slot.
func (s *SQLiteSlot) Get(ctx context.Context) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot row: %w", err)
	}
	return value, true, nil
}

// Set upserts the slot row in a single statement.
func (s *SQLiteSlot) Set(ctx context.Context, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		s.name, value)
	if err != nil {
		return fmt.Errorf("write slot row: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
