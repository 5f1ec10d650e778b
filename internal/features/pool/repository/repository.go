package repository

import (
	"context"

	"portal-backend/internal/features/pool/models"
)

type PoolRepository interface {
	Load(ctx context.Context, country string) (*models.State, error)
	// Mutate loads the country's lists (and owner's history when owner is
	// set), runs fn and persists the result atomically. Nothing is written
	// when fn fails.
	Mutate(ctx context.Context, country, owner string, fn func(state *models.State) error) error
	LoadHistory(ctx context.Context, owner, country string) ([]models.HistoryEntry, error)
	Delete(ctx context.Context, country string) error
}
