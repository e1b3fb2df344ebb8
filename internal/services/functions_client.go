package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FunctionsClient calls the internal functions service, which carries
// the secondary effects (synthetic analytics, notification rows).
type FunctionsClient struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewFunctionsClient(baseURL, secret string, log *zap.Logger) *FunctionsClient {
	return &FunctionsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

func (c *FunctionsClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Internal-Secret", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("functions service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("functions service returned %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

// UpdateCampaignAnalytics invokes the analytics function. action is
// "start" or "update". Failures are logged, not surfaced: analytics are
// a secondary effect.
func (c *FunctionsClient) UpdateCampaignAnalytics(ctx context.Context, campaignID uuid.UUID, action string) {
	err := c.post(ctx, "/functions/update-campaign-analytics", map[string]any{
		"campaign_id": campaignID.String(),
		"action":      action,
	})
	if err != nil {
		c.log.Warn("analytics function call failed",
			zap.String("campaign_id", campaignID.String()),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// SendNotification invokes the notification function. Best effort.
func (c *FunctionsClient) SendNotification(ctx context.Context, userID uuid.UUID, category, title, message string, data map[string]any) {
	err := c.post(ctx, "/functions/send-notification", map[string]any{
		"user_id": userID.String(),
		"type":    category,
		"title":   title,
		"message": message,
		"data":    data,
	})
	if err != nil {
		c.log.Warn("notification function call failed",
			zap.String("user_id", userID.String()),
			zap.String("type", category),
			zap.Error(err),
		)
	}
}
