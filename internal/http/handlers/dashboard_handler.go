package handlers

import (
	"strconv"

	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	campaignRepo  *repositories.CampaignRepo
	analyticsRepo *repositories.AnalyticsRepo
	log           *zap.Logger
}

func NewDashboardHandler(
	campaignRepo *repositories.CampaignRepo,
	analyticsRepo *repositories.AnalyticsRepo,
	log *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		log:           log,
	}
}

// GetSummary aggregates the signed-in user's campaigns into the
// dashboard header numbers plus a daily chart series.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	days := 30
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}

	byStatus, err := h.campaignRepo.CountByStatus(c.Context(), userID)
	if err != nil {
		h.log.Error("dashboard status counts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	impressions, clicks, conversions, err := h.campaignRepo.TotalsByUser(c.Context(), userID)
	if err != nil {
		h.log.Error("dashboard totals failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	spend, err := h.analyticsRepo.TotalSpendByUser(c.Context(), userID)
	if err != nil {
		h.log.Error("dashboard spend failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	series, err := h.analyticsRepo.SeriesByUser(c.Context(), userID, days)
	if err != nil {
		h.log.Error("dashboard series failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	summary := dto.DashboardSummary{
		CampaignsByStatus: byStatus,
		TotalImpressions:  impressions,
		TotalClicks:       clicks,
		TotalConversions:  conversions,
		TotalSpendMMK:     spend,
		Series:            series,
	}
	if impressions > 0 {
		summary.CTRPercent = float64(clicks) / float64(impressions) * 100
	}
	if clicks > 0 {
		summary.CVRPercent = float64(conversions) / float64(clicks) * 100
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: summary})
}
