package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adpulse/backend/internal/events"
	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NotificationService struct {
	notifRepo *repositories.NotificationRepo
	publisher events.Publisher
	log       *zap.Logger
}

func NewNotificationService(
	notifRepo *repositories.NotificationRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notifRepo: notifRepo,
		publisher: publisher,
		log:       log,
	}
}

// Send writes a notification row unless the user muted the category on
// both channels. A user with no preference row is opted in. Returns the
// row id, or skipped=true when muted. No email/push dispatch happens
// here; delivery would branch on the preference channels.
func (s *NotificationService) Send(ctx context.Context, userID uuid.UUID, category, title, message string, data any) (id uuid.UUID, skipped bool, err error) {
	if !models.IsValidNotificationCategory(category) {
		return uuid.Nil, false, fmt.Errorf("invalid notification type %q", category)
	}
	if title == "" || message == "" {
		return uuid.Nil, false, fmt.Errorf("title and message are required")
	}

	pref, err := s.notifRepo.GetPreference(ctx, userID, category)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, err
	}
	if pref != nil && pref.Muted() {
		s.log.Debug("notification skipped, category muted",
			zap.String("user_id", userID.String()),
			zap.String("category", category),
		)
		return uuid.Nil, true, nil
	}

	n := &models.Notification{
		UserID:   userID,
		Category: category,
		Title:    title,
		Message:  message,
		Data:     data,
	}
	if err := s.notifRepo.Create(ctx, n); err != nil {
		return uuid.Nil, false, err
	}

	_ = s.publisher.Publish(ctx, events.StreamNotifications, events.Event{
		Type: events.EventNotificationCreated,
		Payload: map[string]any{
			"notification_id": n.ID.String(),
			"user_id":         userID.String(),
			"category":        category,
		},
	})

	return n.ID, false, nil
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.MarkRead(ctx, id, userID)
}

// Preferences returns one entry per category, filling defaults (both
// channels on) for categories the user never touched.
func (s *NotificationService) Preferences(ctx context.Context, userID uuid.UUID) ([]models.NotificationPreference, error) {
	stored, err := s.notifRepo.ListPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]models.NotificationPreference, len(stored))
	for _, p := range stored {
		byCategory[p.Category] = p
	}

	categories := []string{
		models.NotificationCategoryCampaign,
		models.NotificationCategoryPerformance,
		models.NotificationCategoryBilling,
		models.NotificationCategorySystem,
	}
	prefs := make([]models.NotificationPreference, 0, len(categories))
	for _, cat := range categories {
		if p, ok := byCategory[cat]; ok {
			prefs = append(prefs, p)
			continue
		}
		prefs = append(prefs, models.NotificationPreference{
			UserID:       userID,
			Category:     cat,
			EmailEnabled: true,
			PushEnabled:  true,
		})
	}
	return prefs, nil
}

func (s *NotificationService) UpdatePreference(ctx context.Context, p *models.NotificationPreference) error {
	if !models.IsValidNotificationCategory(p.Category) {
		return fmt.Errorf("invalid notification category %q", p.Category)
	}
	return s.notifRepo.UpsertPreference(ctx, p)
}
