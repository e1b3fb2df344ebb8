package http

import (
	"time"

	"github.com/adpulse/backend/internal/config"
	"github.com/adpulse/backend/internal/http/handlers"
	"github.com/adpulse/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	adHandler *handlers.AdHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	notificationHandler *handlers.NotificationHandler,
	uploadHandler *handlers.UploadHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, 100, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/business-categories", metaHandler.GetBusinessCategories)
	api.Get("/meta/regions", metaHandler.GetRegions)
	api.Get("/meta/ad-types", metaHandler.GetAdTypes)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User and profile
	protected.Get("/me", userHandler.GetMe)
	protected.Get("/me/profile", userHandler.GetProfile)
	protected.Put("/me/profile", userHandler.UpdateProfile)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Post("/campaigns/:id/status", campaignHandler.SetStatus)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)
	protected.Get("/campaigns/:id/analytics", campaignHandler.GetAnalytics)

	// Ads (nested under their campaign for create/list)
	protected.Post("/campaigns/:id/ads", adHandler.CreateAd)
	protected.Get("/campaigns/:id/ads", adHandler.ListAds)
	protected.Get("/ads/:id", adHandler.GetAd)
	protected.Put("/ads/:id", adHandler.UpdateAd)
	protected.Post("/ads/:id/status", adHandler.SetStatus)
	protected.Delete("/ads/:id", adHandler.DeleteAd)

	// Packages and subscriptions
	protected.Get("/packages", subscriptionHandler.ListPackages)
	protected.Post("/subscriptions", subscriptionHandler.Subscribe)
	protected.Delete("/subscriptions/current", subscriptionHandler.Cancel)
	protected.Get("/subscriptions/current", subscriptionHandler.Current)

	// Notifications
	protected.Get("/notifications", notificationHandler.ListNotifications)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)
	protected.Get("/notifications/preferences", notificationHandler.GetPreferences)
	protected.Put("/notifications/preferences", notificationHandler.UpdatePreference)

	// Uploads
	protected.Post("/uploads/:kind", uploadHandler.Upload)
	protected.Delete("/uploads", uploadHandler.Remove)

	// Dashboard
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}

// SetupFunctionsRouter wires the internal functions service: two
// endpoints behind the shared-secret header.
func SetupFunctionsRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	functionsHandler *handlers.FunctionsHandler,
) {
	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	fns := app.Group("/functions", middleware.InternalSecretMiddleware(cfg))
	fns.Post("/update-campaign-analytics", functionsHandler.UpdateCampaignAnalytics)
	fns.Post("/send-notification", functionsHandler.SendNotification)
}
