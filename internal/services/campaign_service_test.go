package services

import (
	"strings"
	"testing"

	"github.com/adpulse/backend/internal/models"
)

func TestActivationError(t *testing.T) {
	complete := *validImageAd()
	incomplete := *validImageAd()
	incomplete.Headline = ""
	noMedia := *validImageAd()
	noMedia.ImageURL = nil

	tests := []struct {
		name    string
		ads     []models.Ad
		wantErr string // substring of the rejection, "" means allowed
	}{
		{"no ads", nil, "campaign has no ads"},
		{"empty slice", []models.Ad{}, "campaign has no ads"},
		{"only incomplete ads", []models.Ad{incomplete, noMedia}, "no ad with complete content"},
		{"one complete ad", []models.Ad{complete}, ""},
		{"complete ad among incomplete", []models.Ad{incomplete, complete, noMedia}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := activationError(tt.ads)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("activationError() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("activationError() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("activationError() = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
