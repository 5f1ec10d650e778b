package service

import (
	"context"

	"portal-backend/internal/features/auth/models"
)

// Messenger delivers codes to a Telegram chat.
type Messenger interface {
	HasToken() bool
	SendMessage(ctx context.Context, chatID int64, text, parseMode string) error
}

// ProfileToucher records a user login; the user feature implements it.
type ProfileToucher interface {
	TouchLogin(ctx context.Context, telegramID string) error
}

type AuthService interface {
	RequestCode(ctx context.Context, realm models.Realm, identity string) error
	Verify(ctx context.Context, realm models.Realm, identity, code string) (string, error)
	IssueSession(ctx context.Context, realm models.Realm, identity, method string) (string, error)
	Resolve(ctx context.Context, realm models.Realm, token string) (string, error)
	Revoke(ctx context.Context, realm models.Realm, token string) error

	// ResolveAdmin and ResolveUser satisfy middleware.SessionResolver.
	ResolveAdmin(ctx context.Context, token string) (string, error)
	ResolveUser(ctx context.Context, token string) (string, error)
}
