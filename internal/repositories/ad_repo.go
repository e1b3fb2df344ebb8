package repositories

import (
	"context"

	"github.com/adpulse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdRepo struct {
	pool *pgxpool.Pool
}

func NewAdRepo(pool *pgxpool.Pool) *AdRepo {
	return &AdRepo{pool: pool}
}

func (r *AdRepo) Create(ctx context.Context, a *models.Ad) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO ads (campaign_id, user_id, name, ad_type, headline, description,
		                 link_url, image_url, video_url, budget_mmk, status, performance_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.UserID, a.Name, a.AdType, a.Headline, a.Description,
		a.LinkURL, a.ImageURL, a.VideoURL, a.BudgetMMK, a.Status, a.PerformanceData,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AdRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Ad, error) {
	var a models.Ad
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, user_id, name, ad_type, headline, description,
		       link_url, image_url, video_url, budget_mmk, status, performance_data,
		       created_at, updated_at
		FROM ads WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.UserID, &a.Name, &a.AdType, &a.Headline,
		&a.Description, &a.LinkURL, &a.ImageURL, &a.VideoURL, &a.BudgetMMK,
		&a.Status, &a.PerformanceData, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdRepo) Update(ctx context.Context, a *models.Ad) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE ads SET name = $1, headline = $2, description = $3, link_url = $4,
		       image_url = $5, video_url = $6, budget_mmk = $7,
		       performance_data = $8, updated_at = now()
		WHERE id = $9
	`, a.Name, a.Headline, a.Description, a.LinkURL,
		a.ImageURL, a.VideoURL, a.BudgetMMK, a.PerformanceData, a.ID)
	return err
}

func (r *AdRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE ads SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

func (r *AdRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	return err
}

func (r *AdRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.Ad, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, user_id, name, ad_type, headline, description,
		       link_url, image_url, video_url, budget_mmk, status, performance_data,
		       created_at, updated_at
		FROM ads WHERE campaign_id = $1
		ORDER BY created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []models.Ad
	for rows.Next() {
		var a models.Ad
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.UserID, &a.Name, &a.AdType,
			&a.Headline, &a.Description, &a.LinkURL, &a.ImageURL, &a.VideoURL,
			&a.BudgetMMK, &a.Status, &a.PerformanceData, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		ads = append(ads, a)
	}
	return ads, nil
}

func (r *AdRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ads WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
