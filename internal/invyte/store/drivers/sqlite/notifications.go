package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

type notificationsRepo struct {
	db dbtx
}

func scanNotification(row scanner) (domain.Notification, error) {
	var (
		n       domain.Notification
		kind    string
		status  string
		payload string
		sentAt  sql.NullTime
	)
	err := row.Scan(&n.ID, &kind, &n.Recipient, &payload, &status, &n.Attempts, &n.LastError,
		&n.CreatedAt, &sentAt)
	if err != nil {
		return domain.Notification{}, err
	}
	if err := json.Unmarshal([]byte(payload), &n.Payload); err != nil {
		return domain.Notification{}, err
	}
	n.Kind = domain.NotificationKind(kind)
	n.Status = domain.NotificationStatus(status)
	n.SentAt = mapNullTimePtr(sentAt)
	return n, nil
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return err
	}
	status := n.Status
	if status == "" {
		status = domain.NotificationPending
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, kind, recipient, payload, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, string(n.Kind), n.Recipient, string(payload), string(status), time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *notificationsRepo) ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, recipient, payload, status, attempts, last_error, created_at, sent_at
		FROM notifications
		WHERE status = 'pending'
		ORDER BY id
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanNotification)
}

func (r *notificationsRepo) MarkNotificationSent(ctx context.Context, id string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE notifications SET status = 'sent', attempts = attempts + 1, sent_at = ? WHERE id = ?`,
		at.UTC(), id,
	))
}

func (r *notificationsRepo) MarkNotificationFailed(ctx context.Context, id string, reason string) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE notifications SET status = 'failed', attempts = attempts + 1, last_error = ? WHERE id = ?`,
		reason, id,
	))
}

func (r *notificationsRepo) DeleteSentNotificationsBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE status = 'sent' AND sent_at < ?`, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
