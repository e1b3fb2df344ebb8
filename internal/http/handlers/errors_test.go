package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"campaign not found", services.ErrCampaignNotFound, fiber.StatusNotFound},
		{"ad not found", services.ErrAdNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrCampaignNotFound), fiber.StatusNotFound},
		{"validation error", errors.New("campaign name is required"), fiber.StatusBadRequest},
		{"invalid transition", errors.New("invalid transition from draft to paused"), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.want {
				t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
