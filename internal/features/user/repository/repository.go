package repository

import (
	"context"

	"portal-backend/internal/features/user/models"
)

// Mutator edits a profile in place. exists is false when no profile was
// stored yet and u is a fresh zero value.
type Mutator func(u *models.User, exists bool) error

type UserRepository interface {
	// GetByID returns nil when no profile exists.
	GetByID(ctx context.Context, telegramID string) (*models.User, error)
	// Upsert applies fn atomically and stores the result.
	Upsert(ctx context.Context, telegramID string, fn Mutator) (*models.User, error)
}
