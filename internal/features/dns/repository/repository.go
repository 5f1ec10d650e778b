package repository

import (
	"context"

	"portal-backend/internal/features/dns/models"
)

type CatalogRepository interface {
	// Get returns an empty catalog when none is stored.
	Get(ctx context.Context) (*models.Catalog, error)
	Put(ctx context.Context, catalog *models.Catalog) error
}
