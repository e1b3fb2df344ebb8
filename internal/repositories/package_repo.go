package repositories

import (
	"context"

	"github.com/adpulse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PackageRepo struct {
	pool *pgxpool.Pool
}

func NewPackageRepo(pool *pgxpool.Pool) *PackageRepo {
	return &PackageRepo{pool: pool}
}

func (r *PackageRepo) ListActive(ctx context.Context) ([]models.Package, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, price_mmk, features,
		       campaign_limit, ad_limit, impression_limit, active, created_at
		FROM packages WHERE active = true
		ORDER BY price_mmk ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []models.Package
	for rows.Next() {
		var p models.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceMMK, &p.Features,
			&p.CampaignLimit, &p.AdLimit, &p.ImpressionLimit, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *PackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	var p models.Package
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price_mmk, features,
		       campaign_limit, ad_limit, impression_limit, active, created_at
		FROM packages WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceMMK, &p.Features,
		&p.CampaignLimit, &p.AdLimit, &p.ImpressionLimit, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
