package repository

import (
	"context"

	"portal-backend/internal/features/apps/models"
)

type AppsRepository interface {
	// Get returns an empty catalog when none is stored or the stored one
	// cannot be decoded.
	Get(ctx context.Context) (*models.Catalog, error)
	Put(ctx context.Context, catalog *models.Catalog) error
}
