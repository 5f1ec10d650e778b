package repository

import (
	"context"
	"errors"
	"time"

	"portal-backend/internal/features/auth/models"
)

// ErrCodeMismatch is returned by RedeemCode when no code is stored for the
// identity or the stored code differs.
var ErrCodeMismatch = errors.New("code mismatch")

type AuthRepository interface {
	SaveCode(ctx context.Context, realm models.Realm, identity, code string, ttl time.Duration) error
	// GetCode returns "" when no code is pending.
	GetCode(ctx context.Context, realm models.Realm, identity string) (string, error)
	// RedeemCode deletes the stored code and stores a session for token in
	// one transaction, provided the stored code equals code.
	RedeemCode(ctx context.Context, realm models.Realm, identity, code, token string) error
	SaveSession(ctx context.Context, realm models.Realm, token, identity string) error
	// GetSession returns "" for an unknown or expired token.
	GetSession(ctx context.Context, realm models.Realm, token string) (string, error)
	DeleteSession(ctx context.Context, realm models.Realm, token string) error
}
