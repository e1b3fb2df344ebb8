package repositories

import (
	"context"
	"time"

	"github.com/adpulse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, category, title, message, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, n.UserID, n.Category, n.Title, n.Message, n.Data).Scan(&n.ID, &n.CreatedAt)
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, category, title, message, data, read, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Category, &n.Title, &n.Message,
			&n.Data, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// MarkRead flips the read flag. Rows belonging to another user look the
// same as missing rows: pgx.ErrNoRows.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	return rowsAffectedErr(tag)
}

// DeleteOlderThan prunes notification rows past the retention window.
func (r *NotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// GetPreference returns the row for (user, category), or nil when the
// user never set one (caller treats absence as all channels on).
func (r *NotificationRepo) GetPreference(ctx context.Context, userID uuid.UUID, category string) (*models.NotificationPreference, error) {
	var p models.NotificationPreference
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, category, email_enabled, push_enabled
		FROM notification_preferences WHERE user_id = $1 AND category = $2
	`, userID, category).Scan(&p.UserID, &p.Category, &p.EmailEnabled, &p.PushEnabled)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *NotificationRepo) ListPreferences(ctx context.Context, userID uuid.UUID) ([]models.NotificationPreference, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, category, email_enabled, push_enabled
		FROM notification_preferences WHERE user_id = $1
		ORDER BY category
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []models.NotificationPreference
	for rows.Next() {
		var p models.NotificationPreference
		if err := rows.Scan(&p.UserID, &p.Category, &p.EmailEnabled, &p.PushEnabled); err != nil {
			return nil, err
		}
		prefs = append(prefs, p)
	}
	return prefs, nil
}

func (r *NotificationRepo) UpsertPreference(ctx context.Context, p *models.NotificationPreference) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notification_preferences (user_id, category, email_enabled, push_enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, category) DO UPDATE SET
			email_enabled = EXCLUDED.email_enabled,
			push_enabled = EXCLUDED.push_enabled
	`, p.UserID, p.Category, p.EmailEnabled, p.PushEnabled)
	return err
}
