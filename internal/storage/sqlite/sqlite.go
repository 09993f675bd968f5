// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads every table inside one read transaction so the snapshot is consistent.
func (s *SQLiteStore) Load(ctx context.Context) (*models.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snap := models.NewSnapshot()
	if err := tx.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'revision'").Scan(&snap.Revision); err != nil {
		return nil, fmt.Errorf("failed to get revision: %w", err)
	}

	if snap.Users, err = loadUsers(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Bills, err = loadBills(ctx, tx); err != nil {
		return nil, err
	}
	if snap.BillShares, err = loadShares(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Categories, err = loadCategories(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Transactions, err = loadTransactions(ctx, tx); err != nil {
		return nil, err
	}
	if snap.Assets, err = loadAssets(ctx, tx); err != nil {
		return nil, err
	}

	return snap, nil
}

// Save replaces every table with the snapshot's contents in one transaction.
// The revision bump doubles as the compare-and-swap: if another writer saved
// first, no row matches and the transaction is rolled back.
func (s *SQLiteStore) Save(ctx context.Context, snap *models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE meta SET value = value + 1 WHERE key = 'revision' AND value = ?",
		snap.Revision,
	)
	if err != nil {
		return fmt.Errorf("failed to bump revision: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to bump revision: %w", err)
	}
	if n == 0 {
		return storage.ErrStaleSnapshot
	}

	// Children first; foreign keys are deferred to commit anyway.
	for _, table := range []string{"transactions", "categories", "bill_shares", "assets", "bills", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertUsers(ctx, tx, snap.Users); err != nil {
		return err
	}
	if err := insertBills(ctx, tx, snap.Bills); err != nil {
		return err
	}
	if err := insertShares(ctx, tx, snap.BillShares); err != nil {
		return err
	}
	if err := insertCategories(ctx, tx, snap.Categories); err != nil {
		return err
	}
	if err := insertTransactions(ctx, tx, snap.Transactions); err != nil {
		return err
	}
	if err := insertAssets(ctx, tx, snap.Assets); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	snap.Revision++
	return nil
}
