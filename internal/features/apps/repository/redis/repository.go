package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"portal-backend/internal/common/logger"
	"portal-backend/internal/features/apps/models"
	"portal-backend/internal/features/apps/repository"
	redisstore "portal-backend/internal/platform/redis"
)

const appsKey = "apps"

type appsRepository struct {
	client *redis.Client
}

func NewAppsRepository(client *redis.Client) repository.AppsRepository {
	return &appsRepository{client: client}
}

func (r *appsRepository) Get(ctx context.Context) (*models.Catalog, error) {
	catalog := &models.Catalog{}
	found, err := redisstore.GetJSON(ctx, r.client, appsKey, catalog)
	if err != nil {
		if !found {
			return nil, err
		}
		logger.Warn().Err(err).Str("key", appsKey).Msg("Ignoring corrupt apps catalog")
		catalog = &models.Catalog{}
	}
	if catalog.Apps == nil {
		catalog.Apps = []models.App{}
	}
	return catalog, nil
}

func (r *appsRepository) Put(ctx context.Context, catalog *models.Catalog) error {
	return redisstore.SetJSON(ctx, r.client, appsKey, catalog, 0)
}
