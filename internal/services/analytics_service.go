package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adpulse/backend/internal/analytics"
	"github.com/adpulse/backend/internal/events"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Analytics actions
const (
	AnalyticsActionStart  = "start"
	AnalyticsActionUpdate = "update"
)

type AnalyticsService struct {
	campaignRepo  *repositories.CampaignRepo
	analyticsRepo *repositories.AnalyticsRepo
	generator     *analytics.Generator
	publisher     events.Publisher
	log           *zap.Logger
}

func NewAnalyticsService(
	campaignRepo *repositories.CampaignRepo,
	analyticsRepo *repositories.AnalyticsRepo,
	generator *analytics.Generator,
	publisher events.Publisher,
	log *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		generator:     generator,
		publisher:     publisher,
		log:           log,
	}
}

// Run executes one analytics action for a campaign. "start" seeds
// today's baseline row; "update" adds an increment shaped by the
// hour-of-day multiplier. Both re-sum the daily rows into the
// campaign's denormalized totals afterwards.
func (s *AnalyticsService) Run(ctx context.Context, campaignID uuid.UUID, action string) error {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch action {
	case AnalyticsActionStart:
		stats := s.generator.DailyBaseline(c.BudgetMMK, now)
		seeded, err := s.analyticsRepo.SeedDay(ctx, c.ID, today, stats)
		if err != nil {
			return err
		}
		if !seeded {
			s.log.Debug("analytics day already seeded", zap.String("campaign_id", c.ID.String()))
		}
	case AnalyticsActionUpdate:
		stats := s.generator.HourlyIncrement(c.BudgetMMK, now)
		if err := s.analyticsRepo.AddToDay(ctx, c.ID, today, stats); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid action %q, must be start or update", action)
	}

	if err := s.analyticsRepo.SumIntoCampaign(ctx, c.ID); err != nil {
		return err
	}

	_ = s.publisher.Publish(ctx, events.StreamCampaigns, events.Event{
		Type: events.EventAnalyticsUpdated,
		Payload: map[string]any{
			"campaign_id": c.ID.String(),
			"action":      action,
		},
	})

	return nil
}
