package handlers

import (
	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userRepo    *repositories.UserRepo
	profileRepo *repositories.ProfileRepo
	log         *zap.Logger
}

func NewUserHandler(userRepo *repositories.UserRepo, profileRepo *repositories.ProfileRepo, log *zap.Logger) *UserHandler {
	return &UserHandler{userRepo: userRepo, profileRepo: profileRepo, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "user not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	profile, err := h.profileRepo.GetByUser(c.Context(), userID)
	if err != nil {
		// No profile yet is a blank form, not an error.
		return c.JSON(dto.SuccessResponse{OK: true, Data: models.Profile{UserID: userID}})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "business_name is required"})
	}

	profile := &models.Profile{
		UserID:       middleware.GetUserID(c),
		BusinessName: req.BusinessName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
	}

	if err := h.profileRepo.Upsert(c.Context(), profile); err != nil {
		h.log.Error("failed to upsert profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}
