// Package notification implements notification storage and delivery using
// PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dms-backend/internal/domain"
)

const notificationColumns = `id, user_id, title, message, is_read, created_at`

const (
	insertSQL = `
INSERT INTO notifications (id, user_id, title, message, is_read, created_at)
VALUES ($1, $2, $3, $4, false, $5)`

	listByUserSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	markReadSQL = `
UPDATE notifications SET is_read = true
WHERE id = $1 AND user_id = $2
RETURNING ` + notificationColumns

	countUnreadSQL = `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`

	deleteReadBeforeSQL = `DELETE FROM notifications WHERE is_read AND created_at < $1`
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, now: time.Now}
}

// Notify stores one unread notification per recipient. All rows are sent
// in a single batch, which pgx runs in an implicit transaction.
func (r *Repo) Notify(ctx context.Context, recipients []uuid.UUID, title, message string) error {
	if len(recipients) == 0 {
		return nil
	}

	createdAt := r.now().UTC()
	batch := &pgx.Batch{}
	for _, userID := range recipients {
		batch.Queue(insertSQL, uuid.New(), userID, title, message, createdAt)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch).Close(); err != nil {
		return postgres.MapError(err, "notification", uuid.Nil)
	}
	return nil
}

// ListByUser returns the user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	list, err := pgx.CollectRows(rows, collectNotification)
	if err != nil {
		return nil, fmt.Errorf("scan notifications: %w", err)
	}
	return list, nil
}

// MarkRead flags a notification as read. Notifications that are absent or
// belong to another user yield domain.ErrNotFound. Marking twice is a no-op.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNotification(q.QueryRow(ctx, markReadSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return &n, nil
}

// CountUnread returns the number of unread notifications of the user.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countUnreadSQL, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// DeleteReadBefore removes read notifications created before the cutoff and
// returns how many were deleted.
func (r *Repo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteReadBeforeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt)
	return n, err
}

func collectNotification(row pgx.CollectableRow) (domain.Notification, error) {
	return scanNotification(row)
}
