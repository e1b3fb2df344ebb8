package handlers

import (
	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves static reference lists the frontend uses to build
// its pickers.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

var businessCategories = []string{
	"retail",
	"food_and_beverage",
	"fashion",
	"electronics",
	"beauty",
	"education",
	"travel",
	"health",
	"services",
	"other",
}

var regions = []string{
	"yangon",
	"mandalay",
	"naypyidaw",
	"bago",
	"ayeyarwady",
	"shan",
	"mon",
	"nationwide",
}

func (h *MetaHandler) GetBusinessCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: businessCategories})
}

func (h *MetaHandler) GetRegions(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: regions})
}

func (h *MetaHandler) GetAdTypes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: []string{models.AdTypeImage, models.AdTypeVideo}})
}
