package repositories

import (
	"context"
	"fmt"

	"github.com/adpulse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (user_id, name, description, status, budget_mmk, target_audience)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.Description, c.Status, c.BudgetMMK, c.TargetAudience,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, status, budget_mmk, target_audience,
		       impressions, clicks, conversions, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Status, &c.BudgetMMK,
		&c.TargetAudience, &c.Impressions, &c.Clicks, &c.Conversions,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET name = $1, description = $2, budget_mmk = $3,
		       target_audience = $4, updated_at = now()
		WHERE id = $5
	`, c.Name, c.Description, c.BudgetMMK, c.TargetAudience, c.ID)
	return err
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	return err
}

// DeleteCascade removes the campaign together with its ads and analytics
// rows in a single transaction, so a failure partway leaves nothing
// orphaned.
func (r *CampaignRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM ads WHERE campaign_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM campaign_analytics WHERE campaign_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

type CampaignFilter struct {
	UserID *uuid.UUID
	Status *string
	Limit  int
	Offset int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `
		SELECT id, user_id, name, description, status, budget_mmk, target_audience,
		       impressions, clicks, conversions, created_at, updated_at
		FROM campaigns
	`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *f.UserID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Status,
			&c.BudgetMMK, &c.TargetAudience, &c.Impressions, &c.Clicks, &c.Conversions,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// ListActive returns every active campaign regardless of owner; used by
// the worker's analytics refresh loop.
func (r *CampaignRepo) ListActive(ctx context.Context) ([]models.Campaign, error) {
	status := models.CampaignStatusActive
	return r.List(ctx, CampaignFilter{Status: &status, Limit: 100})
}

// CountByStatus returns the user's campaign counts keyed by status.
func (r *CampaignRepo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, count(*) FROM campaigns WHERE user_id = $1 GROUP BY status
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

func (r *CampaignRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// TotalsByUser sums the denormalized counters over all of a user's
// campaigns.
func (r *CampaignRepo) TotalsByUser(ctx context.Context, userID uuid.UUID) (impressions, clicks, conversions int64, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(impressions), 0), COALESCE(SUM(clicks), 0), COALESCE(SUM(conversions), 0)
		FROM campaigns WHERE user_id = $1
	`, userID).Scan(&impressions, &clicks, &conversions)
	return
}
