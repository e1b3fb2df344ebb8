package events

import "context"

// Event types
const (
	EventCampaignStatusChanged = "campaign_status_changed"
	EventAnalyticsUpdated      = "analytics_updated"
	EventNotificationCreated   = "notification_created"
)

// Streams
const (
	StreamCampaigns     = "events:campaigns"
	StreamNotifications = "events:notifications"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
