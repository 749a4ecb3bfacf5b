// Package worker holds the background workers that run alongside the
// HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CleanupWorker periodically prunes stale daily attempt rows. Attempt
// counters only matter for the current day; older rows are dead weight
// kept briefly for support queries, then deleted.
type CleanupWorker struct {
	db            *pgxpool.Pool
	ticker        *time.Ticker
	shutdown      chan struct{}
	wg            sync.WaitGroup
	checkInterval time.Duration
	retention     time.Duration
}

// NewCleanupWorker creates a new cleanup worker
func NewCleanupWorker(db *pgxpool.Pool, checkInterval, retention time.Duration) *CleanupWorker {
	if checkInterval <= 0 {
		checkInterval = DefaultCleanupInterval
	}
	if retention <= 0 {
		retention = DefaultLimitsRetention
	}

	return &CleanupWorker{
		db:            db,
		shutdown:      make(chan struct{}),
		checkInterval: checkInterval,
		retention:     retention,
	}
}

// Start starts the cleanup worker
func (w *CleanupWorker) Start() {
	slog.Info(LogMsgCleanupWorkerStarting,
		"check_interval", w.checkInterval,
		"retention", w.retention)

	w.ticker = time.NewTicker(w.checkInterval)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		// Run once on startup so restarts don't postpone the sweep
		w.pruneStaleLimits()

		for {
			select {
			case <-w.ticker.C:
				w.pruneStaleLimits()
			case <-w.shutdown:
				slog.Info(LogMsgCleanupWorkerStopping)
				return
			}
		}
	}()
}

// Shutdown stops the worker and waits for the current sweep to finish
func (w *CleanupWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	if w.ticker != nil {
		w.ticker.Stop()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pruneStaleLimits deletes attempt rows older than the retention window.
func (w *CleanupWorker) pruneStaleLimits() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupQueryTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-w.retention)

	tag, err := w.db.Exec(ctx, SQLDeleteStaleLimits, cutoff)
	if err != nil {
		slog.Error(LogMsgCleanupSweepFailed, "error", err)
		return
	}

	if tag.RowsAffected() > 0 {
		slog.Info(LogMsgCleanupSweepCompleted,
			"rows_deleted", tag.RowsAffected(),
			"cutoff", cutoff.Format("2006-01-02"))
	}
}
