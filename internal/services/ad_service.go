package services

import (
	"context"
	"fmt"

	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdService struct {
	adRepo       *repositories.AdRepo
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewAdService(
	adRepo *repositories.AdRepo,
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *AdService {
	return &AdService{
		adRepo:       adRepo,
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// validateContent enforces the creative rules server-side: required
// text fields plus exactly one media URL, matching the ad type.
func validateContent(a *models.Ad) error {
	if a.Name == "" {
		return fmt.Errorf("ad name is required")
	}
	if a.Headline == "" {
		return fmt.Errorf("ad headline is required")
	}
	if a.Description == "" {
		return fmt.Errorf("ad description is required")
	}
	if !models.IsValidAdType(a.AdType) {
		return fmt.Errorf("ad_type must be image or video")
	}

	hasImage := a.ImageURL != nil && *a.ImageURL != ""
	hasVideo := a.VideoURL != nil && *a.VideoURL != ""
	switch a.AdType {
	case models.AdTypeImage:
		if !hasImage {
			return fmt.Errorf("image ad requires image_url")
		}
		if hasVideo {
			return fmt.Errorf("image ad must not carry video_url")
		}
	case models.AdTypeVideo:
		if !hasVideo {
			return fmt.Errorf("video ad requires video_url")
		}
		if hasImage {
			return fmt.Errorf("video ad must not carry image_url")
		}
	}
	return nil
}

func (s *AdService) ownedCampaign(ctx context.Context, campaignID, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil || c.UserID != userID {
		return nil, ErrCampaignNotFound
	}
	return c, nil
}

func (s *AdService) Create(ctx context.Context, userID, campaignID uuid.UUID, a *models.Ad) error {
	if _, err := s.ownedCampaign(ctx, campaignID, userID); err != nil {
		return err
	}
	if err := validateContent(a); err != nil {
		return err
	}

	a.CampaignID = campaignID
	a.UserID = userID
	if a.Status == "" {
		a.Status = models.AdStatusActive
	}

	if err := s.adRepo.Create(ctx, a); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "ad_created",
		EntityType:  "ad",
		EntityID:    &a.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String(), "ad_type": a.AdType},
	})

	return nil
}

func (s *AdService) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Ad, error) {
	a, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdNotFound
	}
	if a.UserID != userID {
		return nil, ErrAdNotFound
	}
	return a, nil
}

func (s *AdService) ListByCampaign(ctx context.Context, campaignID, userID uuid.UUID) ([]models.Ad, error) {
	if _, err := s.ownedCampaign(ctx, campaignID, userID); err != nil {
		return nil, err
	}
	return s.adRepo.ListByCampaign(ctx, campaignID)
}

func (s *AdService) Update(ctx context.Context, id, userID uuid.UUID, a *models.Ad) error {
	existing, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	// The ad type is fixed at creation; updates keep it.
	a.ID = existing.ID
	a.CampaignID = existing.CampaignID
	a.UserID = existing.UserID
	a.AdType = existing.AdType

	if err := validateContent(a); err != nil {
		return err
	}

	if err := s.adRepo.Update(ctx, a); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "ad_updated",
		EntityType:  "ad",
		EntityID:    &id,
	})

	return nil
}

func (s *AdService) SetStatus(ctx context.Context, id, userID uuid.UUID, status string) (*models.Ad, error) {
	if status != models.AdStatusActive && status != models.AdStatusPaused {
		return nil, fmt.Errorf("ad status must be active or paused")
	}

	a, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.adRepo.UpdateStatus(ctx, a.ID, status); err != nil {
		return nil, err
	}
	a.Status = status

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "ad_status_" + status,
		EntityType:  "ad",
		EntityID:    &a.ID,
	})

	return a, nil
}

func (s *AdService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	a, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.adRepo.Delete(ctx, a.ID); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "ad_deleted",
		EntityType:  "ad",
		EntityID:    &a.ID,
	})

	return nil
}
