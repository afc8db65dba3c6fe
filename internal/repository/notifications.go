package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/fiadoapp/backend/internal/entity"
)

func (r *Repository) CreateNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	const q = `
	INSERT INTO notifications (
		id,
		client_id,
		credit_id,
		kind,
		destination,
		body,
		amount,
		status,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		n.ID,
		n.ClientID,
		n.CreditID,
		n.Kind,
		n.Destination,
		n.Body,
		n.Amount,
		n.Status,
		n.CreatedAt,
	)
	if err != nil {
		return entity.Notification{}, err
	}

	return n, nil
}

// PendingNotifications returns the oldest pending rows first so retries do
// not starve early failures.
func (r *Repository) PendingNotifications(ctx context.Context, limit int) ([]entity.Notification, error) {
	q := selectNotification + `
	WHERE n.status = 'pending'
	ORDER BY n.created_at ASC
	LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func (r *Repository) MarkNotificationSent(ctx context.Context, id uuid.UUID, body string) error {
	const q = `
	UPDATE notifications
	SET status = 'sent', body = $2, error_message = NULL, sent_at = $3
	WHERE id = $1
	`

	result, err := r.db.Exec(ctx, q, id, body, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) MarkNotificationFailed(ctx context.Context, id uuid.UUID, cause string) error {
	const q = `
	UPDATE notifications
	SET status = 'failed', error_message = $2
	WHERE id = $1
	`

	result, err := r.db.Exec(ctx, q, id, zeronull.Text(cause))
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) NotificationsByClient(ctx context.Context, userID, clientID uuid.UUID) ([]entity.Notification, error) {
	q := selectNotification + `
	JOIN clients c ON c.id = n.client_id
	WHERE n.client_id = $1 AND c.user_id = $2
	ORDER BY n.created_at DESC`

	rows, err := r.db.Query(ctx, q, clientID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func scanNotification(row pgx.Row) (n entity.Notification, err error) {
	err = row.Scan(
		&n.ID,
		&n.ClientID,
		&n.CreditID,
		&n.Kind,
		&n.Destination,
		&n.Body,
		&n.Amount,
		&n.Status,
		(*zeronull.Text)(&n.Error),
		&n.CreatedAt,
		&n.SentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Notification{}, entity.ErrNotFound
		}

		return entity.Notification{}, err
	}

	return n, nil
}

func scanNotifications(rows pgx.Rows) ([]entity.Notification, error) {
	var notifications []entity.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
