// Package database holds the database/sql connection used by the quote
// log writer. Catalog reads go through pkg/store (pgx); this wrapper
// only appends to the price_quotes audit table.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type DB struct {
	conn *sql.DB
}

func Connect(databaseURL string) (*DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)

	return &DB{conn: conn}, nil
}

func (db *DB) Ping() error {
	return db.conn.Ping()
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// InsertQuote appends one computed quote to the quote log.
func (db *DB) InsertQuote(quoteID, selectionHash, currency string, total float64, lineCount int) error {
	_, err := db.conn.Exec(`
		INSERT INTO price_quotes (quote_id, selection_hash, currency, total, line_count, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, quoteID, selectionHash, currency, total, lineCount)
	if err != nil {
		return fmt.Errorf("failed to insert quote record: %w", err)
	}
	return nil
}
