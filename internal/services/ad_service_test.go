package services

import (
	"testing"

	"github.com/adpulse/backend/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func validImageAd() *models.Ad {
	return &models.Ad{
		Name:        "June promo",
		AdType:      models.AdTypeImage,
		Headline:    "Thingyan sale",
		Description: "Festival discounts all week",
		ImageURL:    strPtr("https://media.example/campaign-images/u/1.jpg"),
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Ad)
		wantErr bool
	}{
		{"valid image ad", func(a *models.Ad) {}, false},
		{"valid video ad", func(a *models.Ad) {
			a.AdType = models.AdTypeVideo
			a.ImageURL = nil
			a.VideoURL = strPtr("https://media.example/campaign-videos/u/1.mp4")
		}, false},
		{"missing name", func(a *models.Ad) { a.Name = "" }, true},
		{"missing headline", func(a *models.Ad) { a.Headline = "" }, true},
		{"missing description", func(a *models.Ad) { a.Description = "" }, true},
		{"bad ad type", func(a *models.Ad) { a.AdType = "carousel" }, true},
		{"image ad without image url", func(a *models.Ad) { a.ImageURL = nil }, true},
		{"image ad with empty image url", func(a *models.Ad) { a.ImageURL = strPtr("") }, true},
		{"image ad carrying video url", func(a *models.Ad) {
			a.VideoURL = strPtr("https://media.example/campaign-videos/u/1.mp4")
		}, true},
		{"video ad without video url", func(a *models.Ad) {
			a.AdType = models.AdTypeVideo
			a.ImageURL = nil
		}, true},
		{"video ad carrying image url", func(a *models.Ad) {
			a.AdType = models.AdTypeVideo
			a.VideoURL = strPtr("https://media.example/campaign-videos/u/1.mp4")
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validImageAd()
			tt.mutate(a)
			err := validateContent(a)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
