package handlers

import (
	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdHandler struct {
	adService *services.AdService
	log       *zap.Logger
}

func NewAdHandler(adService *services.AdService, log *zap.Logger) *AdHandler {
	return &AdHandler{adService: adService, log: log}
}

func (h *AdHandler) CreateAd(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	var req dto.CreateAdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	ad := &models.Ad{
		Name:            req.Name,
		AdType:          req.AdType,
		Headline:        req.Headline,
		Description:     req.Description,
		LinkURL:         req.LinkURL,
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
		BudgetMMK:       req.BudgetMMK,
		PerformanceData: req.PerformanceData,
	}

	userID := middleware.GetUserID(c)
	if err := h.adService.Create(c.Context(), userID, campaignID, ad); err != nil {
		return c.Status(statusForError(err)).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: ad})
}

func (h *AdHandler) ListAds(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	userID := middleware.GetUserID(c)
	ads, err := h.adService.ListByCampaign(c.Context(), campaignID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: ads})
}

func (h *AdHandler) GetAd(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad id"})
	}

	userID := middleware.GetUserID(c)
	ad, err := h.adService.GetByID(c.Context(), id, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "ad not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: ad})
}

func (h *AdHandler) UpdateAd(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad id"})
	}

	var req dto.UpdateAdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	ad := &models.Ad{
		Name:            req.Name,
		Headline:        req.Headline,
		Description:     req.Description,
		LinkURL:         req.LinkURL,
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
		BudgetMMK:       req.BudgetMMK,
		PerformanceData: req.PerformanceData,
	}

	userID := middleware.GetUserID(c)
	if err := h.adService.Update(c.Context(), id, userID, ad); err != nil {
		return c.Status(statusForError(err)).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: ad})
}

func (h *AdHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad id"})
	}

	var req dto.SetAdStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	userID := middleware.GetUserID(c)
	ad, err := h.adService.SetStatus(c.Context(), id, userID, req.Status)
	if err != nil {
		return c.Status(statusForError(err)).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: ad})
}

func (h *AdHandler) DeleteAd(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid ad id"})
	}

	userID := middleware.GetUserID(c)
	if err := h.adService.Delete(c.Context(), id, userID); err != nil {
		return c.Status(statusForError(err)).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
