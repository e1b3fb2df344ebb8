package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adpulse/backend/internal/config"
	"github.com/adpulse/backend/internal/models"
	"github.com/adpulse/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const packageCacheKey = "cache:packages:active"

type SubscriptionService struct {
	subRepo      *repositories.SubscriptionRepo
	packageRepo  *repositories.PackageRepo
	campaignRepo *repositories.CampaignRepo
	adRepo       *repositories.AdRepo
	auditRepo    *repositories.AuditRepo
	functions    *FunctionsClient
	rdb          *redis.Client
	cfg          *config.Config
	log          *zap.Logger
}

func NewSubscriptionService(
	subRepo *repositories.SubscriptionRepo,
	packageRepo *repositories.PackageRepo,
	campaignRepo *repositories.CampaignRepo,
	adRepo *repositories.AdRepo,
	auditRepo *repositories.AuditRepo,
	functions *FunctionsClient,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		subRepo:      subRepo,
		packageRepo:  packageRepo,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		auditRepo:    auditRepo,
		functions:    functions,
		rdb:          rdb,
		cfg:          cfg,
		log:          log,
	}
}

// ListPackages returns active packages ordered by price, through a
// short-TTL Redis cache.
func (s *SubscriptionService) ListPackages(ctx context.Context) ([]models.Package, error) {
	if cached, err := s.rdb.Get(ctx, packageCacheKey).Result(); err == nil {
		var packages []models.Package
		if err := json.Unmarshal([]byte(cached), &packages); err == nil {
			return packages, nil
		}
	}

	packages, err := s.packageRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(packages); err == nil {
		if err := s.rdb.Set(ctx, packageCacheKey, data, s.cfg.PackageCacheTTL).Err(); err != nil {
			s.log.Warn("failed to cache packages", zap.Error(err))
		}
	}

	return packages, nil
}

func (s *SubscriptionService) Subscribe(ctx context.Context, userID, packageID uuid.UUID) (*models.Subscription, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil || !pkg.Active {
		return nil, fmt.Errorf("package not found")
	}

	sub, err := s.subRepo.CreateActive(ctx, userID, packageID)
	if err != nil {
		if errors.Is(err, repositories.ErrActiveSubscriptionExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "subscription_created",
		EntityType:  "subscription",
		EntityID:    &sub.ID,
		Meta:        map[string]any{"package": pkg.Name},
	})

	s.functions.SendNotification(ctx, userID, models.NotificationCategoryBilling,
		"Subscription started",
		fmt.Sprintf("You are now on the %s package.", pkg.Name),
		map[string]any{"package_id": pkg.ID.String()},
	)

	return sub, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, userID uuid.UUID) error {
	sub, err := s.subRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("no active subscription")
	}

	if err := s.subRepo.Cancel(ctx, sub.ID, userID); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "subscription_cancelled",
		EntityType:  "subscription",
		EntityID:    &sub.ID,
	})

	s.functions.SendNotification(ctx, userID, models.NotificationCategoryBilling,
		"Subscription cancelled",
		"Your subscription has been cancelled.",
		nil,
	)

	return nil
}

// CurrentSubscription bundles the active subscription with its package
// and usage counts for the settings page.
type CurrentSubscription struct {
	Subscription *models.Subscription     `json:"subscription"`
	Package      *models.Package          `json:"package"`
	Usage        models.SubscriptionUsage `json:"usage"`
}

func (s *SubscriptionService) Current(ctx context.Context, userID uuid.UUID) (*CurrentSubscription, error) {
	sub, err := s.subRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("no active subscription")
	}

	pkg, err := s.packageRepo.GetByID(ctx, sub.PackageID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ads, err := s.adRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	impressions, _, _, err := s.campaignRepo.TotalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CurrentSubscription{
		Subscription: sub,
		Package:      pkg,
		Usage:        models.ComputeUsage(pkg, campaigns, ads, impressions),
	}, nil
}
