package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification categories
const (
	NotificationCategoryCampaign    = "campaign"
	NotificationCategoryPerformance = "performance"
	NotificationCategoryBilling     = "billing"
	NotificationCategorySystem      = "system"
)

func IsValidNotificationCategory(c string) bool {
	switch c {
	case NotificationCategoryCampaign, NotificationCategoryPerformance,
		NotificationCategoryBilling, NotificationCategorySystem:
		return true
	}
	return false
}

// Notification is a stored row, not a delivered message. Email/push
// dispatch would hang off the preference channels below.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationPreference is the per-category channel opt-in. A user with
// no row for a category is treated as opted in on both channels.
type NotificationPreference struct {
	UserID       uuid.UUID `json:"user_id"`
	Category     string    `json:"category"`
	EmailEnabled bool      `json:"email_enabled"`
	PushEnabled  bool      `json:"push_enabled"`
}

// Muted reports whether both channels are off, in which case the
// notification writer skips the row entirely.
func (p *NotificationPreference) Muted() bool {
	return !p.EmailEnabled && !p.PushEnabled
}
