// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/fintrack/internal/models"
)

// ErrStaleSnapshot is returned by Store.Save when the stored revision no
// longer matches the revision the snapshot was loaded at.
var ErrStaleSnapshot = errors.New("snapshot is stale")

// Store persists the whole ledger as one snapshot.
// This abstraction allows swapping storage backends (SQLite, JSON file, MongoDB)
// without changing the service layer.
type Store interface {
	// Load returns the current snapshot. An empty store yields an empty
	// snapshot at revision 0.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Save replaces the stored snapshot if its revision still equals
	// snap.Revision, and then advances snap.Revision by one.
	// Returns ErrStaleSnapshot otherwise; nothing is written in that case.
	Save(ctx context.Context, snap *models.Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}
