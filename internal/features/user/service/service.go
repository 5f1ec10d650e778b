package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/features/user/models"
	"portal-backend/internal/features/user/repository"
	"portal-backend/internal/platform/telegram"
)

const configRequestMessage = "درخواست کانفیگ جدید دریافت شد.\n\n" +
	"کانفیگ شما در حال آماده‌سازی است و به زودی ارسال خواهد شد.\n\n" +
	"⏳ لطفا کمی صبر کنید..."

// Messenger sends Telegram messages.
type Messenger interface {
	HasToken() bool
	SendMessage(ctx context.Context, chatID int64, text, parseMode string) error
}

type UserService interface {
	// TouchLogin creates the profile on first login and bumps last_login.
	TouchLogin(ctx context.Context, telegramID string) error
	GetProfile(ctx context.Context, telegramID string) (*models.User, error)
	RequestConfig(ctx context.Context, telegramID string) error
}

type userService struct {
	repo      repository.UserRepository
	messenger Messenger
	now       func() time.Time
	log       zerolog.Logger
}

func NewUserService(repo repository.UserRepository, messenger Messenger) UserService {
	return &userService{
		repo:      repo,
		messenger: messenger,
		now:       time.Now,
		log:       logger.Component("user"),
	}
}

func (s *userService) TouchLogin(ctx context.Context, telegramID string) error {
	now := s.now().UnixMilli()
	_, err := s.repo.Upsert(ctx, telegramID, func(u *models.User, exists bool) error {
		if !exists {
			u.TelegramID = telegramID
			u.CreatedAt = now
		}
		u.LastLogin = now
		return nil
	})
	if err != nil {
		return errors.NewStoreError("touch login", err)
	}
	return nil
}

// GetProfile never fails for a missing profile: callers get a stub carrying
// only the id.
func (s *userService) GetProfile(ctx context.Context, telegramID string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, telegramID)
	if err != nil {
		return nil, errors.NewStoreError("get user", err)
	}
	if user == nil {
		return &models.User{TelegramID: telegramID}, nil
	}
	return user, nil
}

// RequestConfig notifies the user that a config is being prepared and
// counts the request on the profile.
func (s *userService) RequestConfig(ctx context.Context, telegramID string) error {
	if !s.messenger.HasToken() {
		return errors.NewConfigError("Bot token not configured")
	}

	user, err := s.repo.GetByID(ctx, telegramID)
	if err != nil {
		return errors.NewStoreError("get user", err)
	}
	if user == nil {
		return errors.NewNotFoundError("User not found")
	}

	chatID, err := strconv.ParseInt(telegramID, 10, 64)
	if err != nil {
		return errors.NewValidationError("telegram_id", "telegram id must be numeric")
	}
	if err := s.messenger.SendMessage(ctx, chatID, configRequestMessage, "HTML"); err != nil {
		s.log.Error().Err(err).Str("telegram_id", telegramID).Msg("Failed to send config notice")
		return telegram.DispatchError(err, "Failed to send message")
	}

	now := s.now().UnixMilli()
	_, err = s.repo.Upsert(ctx, telegramID, func(u *models.User, exists bool) error {
		if !exists {
			u.TelegramID = telegramID
			u.CreatedAt = now
		}
		u.Configs++
		u.LastConfigRequest = now
		return nil
	})
	if err != nil {
		return errors.NewStoreError("update user", err)
	}

	s.log.Info().Str("telegram_id", telegramID).Msg("Config requested")
	return nil
}
