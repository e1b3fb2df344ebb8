package models

import (
	"time"

	"github.com/google/uuid"
)

// Package is a priced tier a user subscribes to. The limit columns are
// nullable; nil means unlimited, and every currently seeded package is
// unlimited on all three.
type Package struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PriceMMK        int64     `json:"price_mmk"`
	Features        []string  `json:"features"`
	CampaignLimit   *int      `json:"campaign_limit,omitempty"`
	AdLimit         *int      `json:"ad_limit,omitempty"`
	ImpressionLimit *int64    `json:"impression_limit,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Subscription statuses
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

type Subscription struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	PackageID uuid.UUID  `json:"package_id"`
	Status    string     `json:"status"`
	StartedAt time.Time  `json:"started_at"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
}

// SubscriptionUsage is the "current plan" view: counts against the
// package limits. A nil limit is unlimited and reads as 0% used.
type SubscriptionUsage struct {
	Campaigns          int     `json:"campaigns"`
	Ads                int     `json:"ads"`
	Impressions        int64   `json:"impressions"`
	CampaignPercent    float64 `json:"campaign_percent"`
	AdPercent          float64 `json:"ad_percent"`
	ImpressionPercent  float64 `json:"impression_percent"`
	CampaignLimitHit   bool    `json:"campaign_limit_hit"`
	AdLimitHit         bool    `json:"ad_limit_hit"`
	ImpressionLimitHit bool    `json:"impression_limit_hit"`
}

// ComputeUsage fills the percentage and limit-hit fields from raw counts
// and the package limits.
func ComputeUsage(pkg *Package, campaigns, ads int, impressions int64) SubscriptionUsage {
	u := SubscriptionUsage{
		Campaigns:   campaigns,
		Ads:         ads,
		Impressions: impressions,
	}
	if pkg == nil {
		return u
	}
	if pkg.CampaignLimit != nil && *pkg.CampaignLimit > 0 {
		u.CampaignPercent = percent(float64(campaigns), float64(*pkg.CampaignLimit))
		u.CampaignLimitHit = campaigns >= *pkg.CampaignLimit
	}
	if pkg.AdLimit != nil && *pkg.AdLimit > 0 {
		u.AdPercent = percent(float64(ads), float64(*pkg.AdLimit))
		u.AdLimitHit = ads >= *pkg.AdLimit
	}
	if pkg.ImpressionLimit != nil && *pkg.ImpressionLimit > 0 {
		u.ImpressionPercent = percent(float64(impressions), float64(*pkg.ImpressionLimit))
		u.ImpressionLimitHit = impressions >= *pkg.ImpressionLimit
	}
	return u
}

func percent(used, limit float64) float64 {
	p := used / limit * 100
	if p > 100 {
		p = 100
	}
	return p
}
