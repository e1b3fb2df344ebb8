package handlers

import (
	"errors"

	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subService *services.SubscriptionService
	log        *zap.Logger
}

func NewSubscriptionHandler(subService *services.SubscriptionService, log *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService, log: log}
}

func (h *SubscriptionHandler) ListPackages(c *fiber.Ctx) error {
	packages, err := h.subService.ListPackages(c.Context())
	if err != nil {
		h.log.Error("list packages failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: packages})
}

func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid package_id"})
	}

	userID := middleware.GetUserID(c)
	sub, err := h.subService.Subscribe(c.Context(), userID, packageID)
	if err != nil {
		if errors.Is(err, repositories.ErrActiveSubscriptionExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: sub})
}

func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if err := h.subService.Cancel(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	current, err := h.subService.Current(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: current})
}
