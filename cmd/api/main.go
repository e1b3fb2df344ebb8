package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adpulse/backend/internal/config"
	"github.com/adpulse/backend/internal/db"
	"github.com/adpulse/backend/internal/events"
	apphttp "github.com/adpulse/backend/internal/http"
	"github.com/adpulse/backend/internal/http/handlers"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/adpulse/backend/internal/services"
	"github.com/adpulse/backend/internal/storage"
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

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	profileRepo := repositories.NewProfileRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	adRepo := repositories.NewAdRepo(pool)
	analyticsRepo := repositories.NewAnalyticsRepo(pool)
	packageRepo := repositories.NewPackageRepo(pool)
	subscriptionRepo := repositories.NewSubscriptionRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)

	// Object storage
	uploader, err := storage.NewUploader(storage.Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		PublicBaseURL: cfg.S3PublicBaseURL,
		UsePathStyle:  cfg.S3UsePathStyle,
		ImageBucket:   cfg.ImageBucket,
		VideoBucket:   cfg.VideoBucket,
		MaxImageBytes: cfg.MaxImageBytes,
		MaxVideoBytes: cfg.MaxVideoBytes,
	})
	if err != nil {
		log.Fatal("failed to configure object storage", zap.Error(err))
	}

	// Services
	functionsClient := services.NewFunctionsClient(cfg.FunctionsInternalURL, cfg.InternalSecret, log)
	campaignService := services.NewCampaignService(campaignRepo, adRepo, analyticsRepo, auditRepo, functionsClient, publisher, log)
	adService := services.NewAdService(adRepo, campaignRepo, auditRepo, log)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, packageRepo, campaignRepo, adRepo, auditRepo, functionsClient, rdb, cfg, log)
	notificationService := services.NewNotificationService(notificationRepo, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, profileRepo, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	adHandler := handlers.NewAdHandler(adService, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, log)
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)
	uploadHandler := handlers.NewUploadHandler(uploader, log)
	dashboardHandler := handlers.NewDashboardHandler(campaignRepo, analyticsRepo, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		authHandler, userHandler, campaignHandler, adHandler,
		subscriptionHandler, notificationHandler, uploadHandler, dashboardHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
