package handlers

import (
	"strconv"

	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	notifService *services.NotificationService
	log          *zap.Logger
}

func NewNotificationHandler(notifService *services.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifService: notifService, log: log}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	userID := middleware.GetUserID(c)
	notifications, err := h.notifService.List(c.Context(), userID, limit, offset)
	if err != nil {
		h.log.Error("list notifications failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: notifications})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid notification id"})
	}

	userID := middleware.GetUserID(c)
	if err := h.notifService.MarkRead(c.Context(), id, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "notification not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *NotificationHandler) GetPreferences(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	prefs, err := h.notifService.Preferences(c.Context(), userID)
	if err != nil {
		h.log.Error("list preferences failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: prefs})
}

func (h *NotificationHandler) UpdatePreference(c *fiber.Ctx) error {
	var req dto.UpdatePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	pref := &models.NotificationPreference{
		UserID:       middleware.GetUserID(c),
		Category:     req.Category,
		EmailEnabled: req.EmailEnabled,
		PushEnabled:  req.PushEnabled,
	}

	if err := h.notifService.UpdatePreference(c.Context(), pref); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: pref})
}
