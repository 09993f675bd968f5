package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/fintrack/internal/models"
)

var (
	lockWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fintrack_store_lock_wait_seconds",
		Help:    "Time spent waiting for the store lock.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"mode"})

	updates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintrack_store_updates_total",
		Help: "Store updates by outcome.",
	}, []string{"outcome"})
)

// Locker serializes writers across processes that share one store.
type Locker interface {
	// Lock blocks until the lock is held or ctx is done.
	Lock(ctx context.Context) (unlock func(), err error)
}

// Guard wraps a Store so that every mutation runs as one
// load, modify, save unit with no interleaving writers.
type Guard struct {
	store  Store
	locker Locker

	mu sync.RWMutex
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithLocker adds a cross-process lock taken after the in-process one.
func WithLocker(l Locker) GuardOption {
	return func(g *Guard) {
		g.locker = l
	}
}

// NewGuard creates a Guard over store.
func NewGuard(store Store, opts ...GuardOption) *Guard {
	g := &Guard{store: store}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// View loads a snapshot and passes it to fn. fn must not modify it.
func (g *Guard) View(ctx context.Context, fn func(*models.Snapshot) error) error {
	start := time.Now()
	g.mu.RLock()
	defer g.mu.RUnlock()
	lockWait.WithLabelValues("read").Observe(time.Since(start).Seconds())

	snap, err := g.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	return fn(snap)
}

// Update loads a snapshot, lets fn modify it, and saves the result.
// When fn returns an error nothing is saved and the error is returned as is.
func (g *Guard) Update(ctx context.Context, fn func(*models.Snapshot) error) error {
	start := time.Now()
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.locker != nil {
		unlock, err := g.locker.Lock(ctx)
		if err != nil {
			updates.WithLabelValues("lock_error").Inc()
			return fmt.Errorf("failed to acquire store lock: %w", err)
		}
		defer unlock()
	}
	lockWait.WithLabelValues("write").Observe(time.Since(start).Seconds())

	snap, err := g.store.Load(ctx)
	if err != nil {
		updates.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := fn(snap); err != nil {
		updates.WithLabelValues("rejected").Inc()
		return err
	}

	if err := g.store.Save(ctx, snap); err != nil {
		updates.WithLabelValues("error").Inc()
		slog.Error("Failed to save snapshot", "revision", snap.Revision, "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	updates.WithLabelValues("ok").Inc()
	return nil
}

// Close closes the underlying store.
func (g *Guard) Close() error {
	return g.store.Close()
}
