package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adpulse/backend/internal/analytics"
	"github.com/adpulse/backend/internal/config"
	"github.com/adpulse/backend/internal/db"
	"github.com/adpulse/backend/internal/events"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/adpulse/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repos
	campaignRepo := repositories.NewCampaignRepo(pool)
	analyticsRepo := repositories.NewAnalyticsRepo(pool)
	subscriptionRepo := repositories.NewSubscriptionRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)

	// Services
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)
	generator := analytics.NewGenerator(cfg.AnalyticsSeed)
	analyticsService := services.NewAnalyticsService(campaignRepo, analyticsRepo, generator, publisher, log)

	// Mirror the event streams into the worker log for operators.
	for _, stream := range []string{events.StreamCampaigns, events.StreamNotifications} {
		stream := stream
		if err := subscriber.Subscribe(ctx, stream, func(e events.Event) {
			log.Info("event", zap.String("stream", stream), zap.String("type", e.Type), zap.Any("payload", e.Payload))
		}); err != nil {
			log.Error("failed to subscribe to events", zap.String("stream", stream), zap.Error(err))
		}
	}

	log.Info("worker started")

	analyticsTicker := time.NewTicker(cfg.AnalyticsRefreshInterval)
	sweepTicker := time.NewTicker(cfg.SubscriptionSweepInterval)
	pruneTicker := time.NewTicker(24 * time.Hour)
	defer analyticsTicker.Stop()
	defer sweepTicker.Stop()
	defer pruneTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-analyticsTicker.C:
			runAnalyticsRefresh(ctx, campaignRepo, analyticsService, log)
		case <-sweepTicker.C:
			runSubscriptionSweep(ctx, subscriptionRepo, log)
		case <-pruneTicker.C:
			runNotificationPruning(ctx, notificationRepo, cfg, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runAnalyticsRefresh applies one hourly-style increment to every
// active campaign.
func runAnalyticsRefresh(ctx context.Context, campaignRepo *repositories.CampaignRepo, analyticsService *services.AnalyticsService, log *zap.Logger) {
	campaigns, err := campaignRepo.ListActive(ctx)
	if err != nil {
		log.Error("failed to list active campaigns", zap.Error(err))
		return
	}

	for _, c := range campaigns {
		if err := analyticsService.Run(ctx, c.ID, services.AnalyticsActionUpdate); err != nil {
			log.Error("analytics refresh failed",
				zap.String("campaign_id", c.ID.String()),
				zap.Error(err),
			)
		}
	}

	if len(campaigns) > 0 {
		log.Info("analytics refreshed", zap.Int("campaigns", len(campaigns)))
	}
}

func runSubscriptionSweep(ctx context.Context, subscriptionRepo *repositories.SubscriptionRepo, log *zap.Logger) {
	expired, err := subscriptionRepo.ExpireDue(ctx)
	if err != nil {
		log.Error("subscription sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		log.Info("subscriptions expired", zap.Int64("count", expired))
	}
}

func runNotificationPruning(ctx context.Context, notificationRepo *repositories.NotificationRepo, cfg *config.Config, log *zap.Logger) {
	cutoff := time.Now().AddDate(0, 0, -cfg.NotificationRetentionDays)
	pruned, err := notificationRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Error("notification pruning failed", zap.Error(err))
		return
	}
	if pruned > 0 {
		log.Info("old notifications pruned", zap.Int64("count", pruned))
	}
}
