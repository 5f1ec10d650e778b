package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"portal-backend/internal/common/logger"
	"portal-backend/internal/features/dns/models"
	"portal-backend/internal/features/dns/repository"
	redisstore "portal-backend/internal/platform/redis"
)

const catalogKey = "dns"

type catalogRepository struct {
	client *redis.Client
}

func NewCatalogRepository(client *redis.Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) Get(ctx context.Context) (*models.Catalog, error) {
	catalog := &models.Catalog{}
	found, err := redisstore.GetJSON(ctx, r.client, catalogKey, catalog)
	if err != nil {
		if !found {
			return nil, err
		}
		// a hand-edited document must not take the listing down
		logger.Warn().Err(err).Str("key", catalogKey).Msg("Ignoring corrupt DNS catalog")
		catalog = &models.Catalog{}
	}
	if catalog.Countries == nil {
		catalog.Countries = []models.Country{}
	}
	return catalog, nil
}

func (r *catalogRepository) Put(ctx context.Context, catalog *models.Catalog) error {
	return redisstore.SetJSON(ctx, r.client, catalogKey, catalog, 0)
}
