package repositories

import (
	"context"
	"time"

	"github.com/adpulse/backend/internal/analytics"
	"github.com/adpulse/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepo(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// SeedDay inserts the day's baseline row if none exists yet. Returns
// true when a row was inserted.
func (r *AnalyticsRepo) SeedDay(ctx context.Context, campaignID uuid.UUID, date time.Time, s analytics.Stats) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO campaign_analytics (campaign_id, date, reach, impressions, clicks, conversions, spend_mmk)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (campaign_id, date) DO NOTHING
	`, campaignID, date, s.Reach, s.Impressions, s.Clicks, s.Conversions, s.SpendMMK)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddToDay accumulates an increment onto the day's row, creating it if
// needed. Counters only ever grow.
func (r *AnalyticsRepo) AddToDay(ctx context.Context, campaignID uuid.UUID, date time.Time, s analytics.Stats) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO campaign_analytics (campaign_id, date, reach, impressions, clicks, conversions, spend_mmk)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (campaign_id, date) DO UPDATE SET
			reach = campaign_analytics.reach + EXCLUDED.reach,
			impressions = campaign_analytics.impressions + EXCLUDED.impressions,
			clicks = campaign_analytics.clicks + EXCLUDED.clicks,
			conversions = campaign_analytics.conversions + EXCLUDED.conversions,
			spend_mmk = campaign_analytics.spend_mmk + EXCLUDED.spend_mmk
	`, campaignID, date, s.Reach, s.Impressions, s.Clicks, s.Conversions, s.SpendMMK)
	return err
}

// SumIntoCampaign re-sums all daily rows into the campaign's
// denormalized totals.
func (r *AnalyticsRepo) SumIntoCampaign(ctx context.Context, campaignID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET
			impressions = COALESCE((SELECT SUM(impressions) FROM campaign_analytics WHERE campaign_id = $1), 0),
			clicks      = COALESCE((SELECT SUM(clicks) FROM campaign_analytics WHERE campaign_id = $1), 0),
			conversions = COALESCE((SELECT SUM(conversions) FROM campaign_analytics WHERE campaign_id = $1), 0),
			updated_at  = now()
		WHERE id = $1
	`, campaignID)
	return err
}

func (r *AnalyticsRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID, days int) ([]models.CampaignAnalytics, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, date, reach, impressions, clicks, conversions, spend_mmk, created_at
		FROM campaign_analytics
		WHERE campaign_id = $1 AND date > now() - make_interval(days => $2)
		ORDER BY date ASC
	`, campaignID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.CampaignAnalytics
	for rows.Next() {
		var a models.CampaignAnalytics
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.Date, &a.Reach, &a.Impressions,
			&a.Clicks, &a.Conversions, &a.SpendMMK, &a.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

// DailyTotal is one point of the dashboard chart series, summed over
// all of a user's campaigns.
type DailyTotal struct {
	Date        time.Time `json:"date"`
	Reach       int64     `json:"reach"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	SpendMMK    int64     `json:"spend_mmk"`
}

func (r *AnalyticsRepo) SeriesByUser(ctx context.Context, userID uuid.UUID, days int) ([]DailyTotal, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	rows, err := r.pool.Query(ctx, `
		SELECT ca.date,
		       SUM(ca.reach), SUM(ca.impressions), SUM(ca.clicks), SUM(ca.conversions), SUM(ca.spend_mmk)
		FROM campaign_analytics ca
		JOIN campaigns c ON c.id = ca.campaign_id
		WHERE c.user_id = $1 AND ca.date > now() - make_interval(days => $2)
		GROUP BY ca.date
		ORDER BY ca.date ASC
	`, userID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []DailyTotal
	for rows.Next() {
		var d DailyTotal
		if err := rows.Scan(&d.Date, &d.Reach, &d.Impressions, &d.Clicks, &d.Conversions, &d.SpendMMK); err != nil {
			return nil, err
		}
		series = append(series, d)
	}
	return series, nil
}

func (r *AnalyticsRepo) TotalSpendByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var spend int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(ca.spend_mmk), 0)
		FROM campaign_analytics ca
		JOIN campaigns c ON c.id = ca.campaign_id
		WHERE c.user_id = $1
	`, userID).Scan(&spend)
	return spend, err
}
