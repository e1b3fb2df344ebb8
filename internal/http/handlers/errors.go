package handlers

import (
	"errors"

	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// statusForError distinguishes missing/foreign resources (404) from
// validation failures (400) for service-layer errors.
func statusForError(err error) int {
	if errors.Is(err, services.ErrCampaignNotFound) || errors.Is(err, services.ErrAdNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}
