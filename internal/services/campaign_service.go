package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adpulse/backend/internal/events"
	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Not-found sentinels. Ownership failures report the same way as missing
// rows so foreign ids leak nothing.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAdNotFound       = errors.New("ad not found")
)

type CampaignService struct {
	campaignRepo  *repositories.CampaignRepo
	adRepo        *repositories.AdRepo
	analyticsRepo *repositories.AnalyticsRepo
	auditRepo     *repositories.AuditRepo
	functions     *FunctionsClient
	publisher     events.Publisher
	log           *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	adRepo *repositories.AdRepo,
	analyticsRepo *repositories.AnalyticsRepo,
	auditRepo *repositories.AuditRepo,
	functions *FunctionsClient,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo:  campaignRepo,
		adRepo:        adRepo,
		analyticsRepo: analyticsRepo,
		auditRepo:     auditRepo,
		functions:     functions,
		publisher:     publisher,
		log:           log,
	}
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	if c.Name == "" {
		return fmt.Errorf("campaign name is required")
	}
	if c.BudgetMMK <= 0 {
		return fmt.Errorf("campaign budget must be positive")
	}

	c.UserID = userID
	c.Status = models.CampaignStatusDraft

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return nil
}

func (s *CampaignService) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCampaignNotFound
	}
	if c.UserID != userID {
		return nil, ErrCampaignNotFound
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, userID uuid.UUID, f repositories.CampaignFilter) ([]models.Campaign, error) {
	f.UserID = &userID
	return s.campaignRepo.List(ctx, f)
}

func (s *CampaignService) Update(ctx context.Context, id, userID uuid.UUID, c *models.Campaign) error {
	existing, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if c.Name == "" {
		return fmt.Errorf("campaign name is required")
	}
	if c.BudgetMMK <= 0 {
		return fmt.Errorf("campaign budget must be positive")
	}

	c.ID = id
	c.UserID = existing.UserID

	if err := s.campaignRepo.Update(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_updated",
		EntityType:  "campaign",
		EntityID:    &id,
	})

	return nil
}

// activationError reports why a campaign may not go active: it needs at
// least one ad with complete content (media URL matching its type plus
// headline and description). Nil means activation is allowed.
func activationError(ads []models.Ad) error {
	if len(ads) == 0 {
		return fmt.Errorf("campaign has no ads")
	}
	for i := range ads {
		if ads[i].IsComplete() {
			return nil
		}
	}
	return fmt.Errorf("no ad with complete content (media, headline and description required)")
}

// SetStatus performs a user-initiated status transition. Activation is
// guarded by activationError.
func (s *CampaignService) SetStatus(ctx context.Context, id, userID uuid.UUID, newStatus string) (*models.Campaign, error) {
	c, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidCampaignTransition(c.Status, newStatus) {
		return nil, fmt.Errorf("invalid transition from %s to %s", c.Status, newStatus)
	}

	if newStatus == models.CampaignStatusActive {
		ads, err := s.adRepo.ListByCampaign(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if err := activationError(ads); err != nil {
			return nil, err
		}
	}

	oldStatus := c.Status
	if err := s.campaignRepo.UpdateStatus(ctx, c.ID, newStatus); err != nil {
		return nil, err
	}
	c.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      fmt.Sprintf("campaign_status_%s_to_%s", oldStatus, newStatus),
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.StreamCampaigns, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": c.ID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	// Secondary effects on first activation: seed analytics and notify.
	if newStatus == models.CampaignStatusActive {
		s.functions.UpdateCampaignAnalytics(ctx, c.ID, "start")
		s.functions.SendNotification(ctx, userID, models.NotificationCategoryCampaign,
			"Campaign activated",
			fmt.Sprintf("Your campaign %q is now active.", c.Name),
			map[string]any{"campaign_id": c.ID.String()},
		)
	}

	return c, nil
}

// Delete removes the campaign and everything hanging off it in one
// transaction.
func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	c, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.campaignRepo.DeleteCascade(ctx, c.ID); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_deleted",
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"name": c.Name},
	})

	return nil
}

func (s *CampaignService) Analytics(ctx context.Context, id, userID uuid.UUID, days int) ([]models.CampaignAnalytics, error) {
	c, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.analyticsRepo.ListByCampaign(ctx, c.ID, days)
}
