// Package storage caches the most recent transaction snapshot in SQLite so
// read-only commands keep working when the backend is unreachable.
//
// The cache follows the same invariant as everything downstream of a fetch:
// it is replaced wholesale on every successful fetch, never patched.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JenishBhuju/Clarity/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SnapshotCache stores the last fetched transaction list.
type SnapshotCache struct {
	db *sql.DB
}

// NewSnapshotCache opens (and if necessary creates) the cache database.
func NewSnapshotCache(dbPath string) (*SnapshotCache, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	cache := &SnapshotCache{db: db}
	if err := cache.migrate(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

// Close closes the database connection.
func (c *SnapshotCache) Close() error {
	return c.db.Close()
}

func (c *SnapshotCache) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshot_transactions (
		id INTEGER PRIMARY KEY,
		type TEXT NOT NULL,
		amount TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_snapshot_date ON snapshot_transactions(date);
	CREATE TABLE IF NOT EXISTS snapshot_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

// Replace swaps the cached snapshot for a new one atomically.
func (c *SnapshotCache) Replace(ctx context.Context, transactions []model.Transaction, fetchedAt time.Time) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_transactions`); err != nil {
		return fmt.Errorf("failed to clear cached snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_transactions (
			id, type, amount, category, description, date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if _, err := stmt.ExecContext(ctx,
			txn.ID,
			string(txn.Type),
			txn.Amount,
			string(txn.Category),
			txn.Description,
			txn.Date,
			txn.CreatedAt,
			txn.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to cache transaction %d: %w", txn.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (key, value) VALUES ('fetched_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, fetchedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to record fetch time: %w", err)
	}

	return tx.Commit()
}

// Load returns the cached snapshot and when it was fetched. A cache that
// has never been written returns an empty list and a zero time.
func (c *SnapshotCache) Load(ctx context.Context) ([]model.Transaction, time.Time, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, type, amount, category, description, date, created_at, updated_at
		FROM snapshot_transactions
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query cached snapshot: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var txType, category string
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&txn.ID, &txType, &txn.Amount, &category,
			&txn.Description, &txn.Date, &createdAt, &updatedAt); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan cached transaction: %w", err)
		}
		txn.Type = model.TransactionType(txType)
		txn.Category = model.Category(category)
		txn.CreatedAt = createdAt.Time
		txn.UpdatedAt = updatedAt.Time
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read cached snapshot: %w", err)
	}

	var fetchedAtRaw string
	err = c.db.QueryRowContext(ctx,
		`SELECT value FROM snapshot_meta WHERE key = 'fetched_at'`).Scan(&fetchedAtRaw)
	if err == sql.ErrNoRows {
		return transactions, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read fetch time: %w", err)
	}

	fetchedAt, err := time.Parse(time.RFC3339, fetchedAtRaw)
	if err != nil {
		return transactions, time.Time{}, nil
	}
	return transactions, fetchedAt, nil
}
