package models

import (
	"time"

	"github.com/google/uuid"
)

// Ad types
const (
	AdTypeImage = "image"
	AdTypeVideo = "video"
)

// Ad statuses
const (
	AdStatusActive = "active"
	AdStatusPaused = "paused"
)

func IsValidAdType(t string) bool {
	return t == AdTypeImage || t == AdTypeVideo
}

type Ad struct {
	ID              uuid.UUID `json:"id"`
	CampaignID      uuid.UUID `json:"campaign_id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	AdType          string    `json:"ad_type"` // image / video
	Headline        string    `json:"headline"`
	Description     string    `json:"description"`
	LinkURL         *string   `json:"link_url,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	VideoURL        *string   `json:"video_url,omitempty"`
	BudgetMMK       int64     `json:"budget_mmk"`
	Status          string    `json:"status"`
	PerformanceData any       `json:"performance_data,omitempty"` // targeting metadata blob
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MediaURL returns whichever media URL matches the ad type.
func (a *Ad) MediaURL() *string {
	if a.AdType == AdTypeVideo {
		return a.VideoURL
	}
	return a.ImageURL
}

// IsComplete reports whether the ad has everything needed to serve:
// a media URL matching its type plus headline and description.
// Campaigns may only go active with at least one complete ad.
func (a *Ad) IsComplete() bool {
	media := a.MediaURL()
	if media == nil || *media == "" {
		return false
	}
	return a.Headline != "" && a.Description != ""
}
