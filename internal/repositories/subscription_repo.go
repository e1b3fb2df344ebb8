package repositories

import (
	"context"
	"errors"

	"github.com/adpulse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrActiveSubscriptionExists is returned when a user tries to
// subscribe while already holding an active subscription.
var ErrActiveSubscriptionExists = errors.New("subscription already exists")

type SubscriptionRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionRepo(pool *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// CreateActive inserts an active subscription inside a transaction that
// first locks and checks for an existing active row. The partial unique
// index on (user_id) WHERE status = 'active' backstops the check.
func (r *SubscriptionRepo) CreateActive(ctx context.Context, userID, packageID uuid.UUID) (*models.Subscription, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var existing uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT id FROM subscriptions
		WHERE user_id = $1 AND status = $2
		FOR UPDATE
	`, userID, models.SubscriptionStatusActive).Scan(&existing)
	if err == nil {
		return nil, ErrActiveSubscriptionExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	var s models.Subscription
	err = tx.QueryRow(ctx, `
		INSERT INTO subscriptions (user_id, package_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, package_id, status, started_at, ends_at
	`, userID, packageID, models.SubscriptionStatusActive).Scan(
		&s.ID, &s.UserID, &s.PackageID, &s.Status, &s.StartedAt, &s.EndsAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubscriptionRepo) GetActiveByUser(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	var s models.Subscription
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, package_id, status, started_at, ends_at
		FROM subscriptions WHERE user_id = $1 AND status = $2
	`, userID, models.SubscriptionStatusActive).Scan(
		&s.ID, &s.UserID, &s.PackageID, &s.Status, &s.StartedAt, &s.EndsAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Cancel marks the subscription cancelled and stamps the end date.
// Returns pgx.ErrNoRows semantics via RowsAffected check.
func (r *SubscriptionRepo) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions SET status = $1, ends_at = now()
		WHERE id = $2 AND user_id = $3 AND status = $4
	`, models.SubscriptionStatusCancelled, id, userID, models.SubscriptionStatusActive)
	if err != nil {
		return err
	}
	return rowsAffectedErr(tag)
}

// ExpireDue flips active subscriptions whose ends_at has passed to
// expired. Used by the worker sweep.
func (r *SubscriptionRepo) ExpireDue(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions SET status = $1
		WHERE status = $2 AND ends_at IS NOT NULL AND ends_at < now()
	`, models.SubscriptionStatusExpired, models.SubscriptionStatusActive)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
