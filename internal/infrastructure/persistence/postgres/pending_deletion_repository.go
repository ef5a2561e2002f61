package postgres

import (
	"context"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/jackc/pgx/v5"
)

// PendingDeletionRepository stores object names whose removal from storage
// has to be retried.
type PendingDeletionRepository struct {
	db *DB
}

func NewPendingDeletionRepository(db *DB) *PendingDeletionRepository {
	return &PendingDeletionRepository{db: db}
}

var _ application.PendingDeletionQueue = (*PendingDeletionRepository)(nil)

func (r *PendingDeletionRepository) Enqueue(ctx context.Context, objectName string, cause error) error {
	query := `
		INSERT INTO pending_object_deletions (object_name, last_error)
		VALUES ($1, $2)
		ON CONFLICT (object_name) DO UPDATE SET last_error = EXCLUDED.last_error
	`

	_, err := r.db.Pool.Exec(ctx, query, objectName, errorText(cause))
	if err != nil {
		return storeFailure("enqueue object deletion", err)
	}
	return nil
}

// FindDue returns up to limit entries whose next attempt is due, oldest first.
func (r *PendingDeletionRepository) FindDue(ctx context.Context, limit int) ([]application.PendingDeletion, error) {
	query := `
		SELECT object_name, attempts, next_attempt_at, last_error, created_at
		FROM pending_object_deletions
		WHERE next_attempt_at <= NOW()
		ORDER BY next_attempt_at ASC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storeFailure("find due object deletions", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (application.PendingDeletion, error) {
		var m PendingDeletionModel
		err := row.Scan(&m.ObjectName, &m.Attempts, &m.NextAttemptAt, &m.LastError, &m.CreatedAt)
		return toPendingDeletion(m), err
	})
	if err != nil {
		return nil, storeFailure("find due object deletions", err)
	}

	return results, nil
}

func (r *PendingDeletionRepository) Remove(ctx context.Context, objectName string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM pending_object_deletions WHERE object_name = $1`, objectName)
	if err != nil {
		return storeFailure("remove object deletion", err)
	}
	return nil
}

func (r *PendingDeletionRepository) Reschedule(ctx context.Context, objectName string, nextAttemptAt time.Time, cause error) error {
	query := `
		UPDATE pending_object_deletions
		SET attempts = attempts + 1,
		    next_attempt_at = $2,
		    last_error = $3
		WHERE object_name = $1
	`

	_, err := r.db.Pool.Exec(ctx, query, objectName, nextAttemptAt, errorText(cause))
	if err != nil {
		return storeFailure("reschedule object deletion", err)
	}
	return nil
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
