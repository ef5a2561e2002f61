package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application"
)

const (
	maxCleanupAttempts = 10
	maxCleanupBackoff  = time.Hour
)

// ObjectCleanupWorker retries object deletions that failed while serving a
// request. Entries are dropped after a permanent storage error or after
// maxCleanupAttempts tries.
type ObjectCleanupWorker struct {
	queue     application.PendingDeletionQueue
	storage   application.ObjectStorage
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	now       func() time.Time
}

func NewObjectCleanupWorker(
	queue application.PendingDeletionQueue,
	storage application.ObjectStorage,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *ObjectCleanupWorker {
	return &ObjectCleanupWorker{
		queue:     queue,
		storage:   storage,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
		now:       time.Now,
	}
}

func (w *ObjectCleanupWorker) Start(ctx context.Context) {
	w.logger.Info("object cleanup worker started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("object cleanup worker stopping")
			return
		case <-ticker.C:
			if _, err := w.ProcessDue(ctx); err != nil {
				w.logger.Error("object cleanup failed", "error", err)
			}
		}
	}
}

// ProcessDue runs one pass over the due entries and returns how many objects
// were deleted.
func (w *ObjectCleanupWorker) ProcessDue(ctx context.Context) (int, error) {
	due, err := w.queue.FindDue(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("find due deletions: %w", err)
	}

	var deleted int
	for _, entry := range due {
		if ctx.Err() != nil {
			return deleted, ctx.Err()
		}

		if err := w.storage.DeleteObject(ctx, entry.ObjectName); err != nil {
			w.handleFailure(ctx, entry, err)
			continue
		}

		if err := w.queue.Remove(ctx, entry.ObjectName); err != nil {
			w.logger.Error("remove pending deletion failed",
				"object_name", entry.ObjectName,
				"error", err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		w.logger.Info("deleted pending objects", "count", deleted)
	}

	return deleted, nil
}

func (w *ObjectCleanupWorker) handleFailure(ctx context.Context, entry application.PendingDeletion, cause error) {
	category := application.CategorizeError(cause)
	attempts := entry.Attempts + 1

	if category == application.CategoryPermanent || attempts >= maxCleanupAttempts {
		w.logger.Error("ORPHANED_OBJECT",
			"object_name", entry.ObjectName,
			"attempts", attempts,
			"category", category,
			"error", cause,
			"action", "MANUAL_CLEANUP_REQUIRED")

		if err := w.queue.Remove(ctx, entry.ObjectName); err != nil {
			w.logger.Error("remove pending deletion failed",
				"object_name", entry.ObjectName,
				"error", err)
		}
		return
	}

	next := w.now().Add(cleanupBackoff(entry.Attempts))
	if err := w.queue.Reschedule(ctx, entry.ObjectName, next, cause); err != nil {
		w.logger.Error("reschedule pending deletion failed",
			"object_name", entry.ObjectName,
			"error", err)
		return
	}

	w.logger.Warn("object delete retry failed",
		"object_name", entry.ObjectName,
		"attempts", attempts,
		"next_attempt_at", next,
		"error", cause)
}

// cleanupBackoff is 1<<attempts minutes, capped at maxCleanupBackoff.
func cleanupBackoff(attempts int) time.Duration {
	if attempts >= 6 {
		return maxCleanupBackoff
	}
	return min(time.Duration(1<<attempts)*time.Minute, maxCleanupBackoff)
}
