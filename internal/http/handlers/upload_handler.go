package handlers

import (
	"io"

	"github.com/adpulse/backend/internal/http/dto"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/adpulse/backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	uploader *storage.Uploader
	log      *zap.Logger
}

func NewUploadHandler(uploader *storage.Uploader, log *zap.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// Upload accepts a multipart "file" field under /uploads/:kind where
// kind is image or video, and returns the public URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind != storage.KindImage && kind != storage.KindVideo {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "kind must be image or video"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "multipart field 'file' is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cannot read uploaded file"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cannot read uploaded file"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	userID := middleware.GetUserID(c)

	url, err := h.uploader.Upload(c.Context(), userID, kind, data, contentType)
	if err != nil {
		h.log.Warn("upload rejected",
			zap.String("user_id", userID.String()),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}

func (h *UploadHandler) Remove(c *fiber.Ctx) error {
	var req dto.RemoveUploadRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "url is required"})
	}

	if err := h.uploader.Remove(c.Context(), req.URL); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
