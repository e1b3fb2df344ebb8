package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adpulse/backend/internal/analytics"
	"github.com/adpulse/backend/internal/config"
	"github.com/adpulse/backend/internal/db"
	"github.com/adpulse/backend/internal/events"
	apphttp "github.com/adpulse/backend/internal/http"
	"github.com/adpulse/backend/internal/http/handlers"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/adpulse/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

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

	campaignRepo := repositories.NewCampaignRepo(pool)
	analyticsRepo := repositories.NewAnalyticsRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)

	publisher := events.NewRedisPublisher(rdb, log)
	generator := analytics.NewGenerator(cfg.AnalyticsSeed)

	analyticsService := services.NewAnalyticsService(campaignRepo, analyticsRepo, generator, publisher, log)
	notificationService := services.NewNotificationService(notificationRepo, publisher, log)

	functionsHandler := handlers.NewFunctionsHandler(analyticsService, notificationService, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupFunctionsRouter(app, cfg, log, functionsHandler)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.FunctionsPort)
	log.Info("starting functions server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
