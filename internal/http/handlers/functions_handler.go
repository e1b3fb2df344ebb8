package handlers

import (
	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FunctionsHandler exposes the two internal function endpoints served
// by the functions binary behind the shared-secret middleware.
type FunctionsHandler struct {
	analyticsService *services.AnalyticsService
	notifService     *services.NotificationService
	log              *zap.Logger
}

func NewFunctionsHandler(
	analyticsService *services.AnalyticsService,
	notifService *services.NotificationService,
	log *zap.Logger,
) *FunctionsHandler {
	return &FunctionsHandler{
		analyticsService: analyticsService,
		notifService:     notifService,
		log:              log,
	}
}

func (h *FunctionsHandler) UpdateCampaignAnalytics(c *fiber.Ctx) error {
	var req dto.UpdateAnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "campaign_id is required"})
	}

	if err := h.analyticsService.Run(c.Context(), campaignID, req.Action); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.FunctionResponse{
		Success: true,
		Message: "analytics " + req.Action + " applied",
	})
}

func (h *FunctionsHandler) SendNotification(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "user_id is required"})
	}

	id, skipped, err := h.notifService.Send(c.Context(), userID, req.Type, req.Title, req.Message, req.Data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if skipped {
		return c.JSON(dto.FunctionResponse{Success: true, Message: "notification skipped, category muted"})
	}

	return c.JSON(dto.FunctionResponse{
		Success:        true,
		Message:        "notification created",
		NotificationID: id.String(),
	})
}
