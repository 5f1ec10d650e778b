package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/metrics"
	"portal-backend/internal/common/validation"
	"portal-backend/internal/features/auth/models"
	"portal-backend/internal/features/auth/repository"
	"portal-backend/internal/platform/telegram"
	"portal-backend/internal/utils/random"
)

type authService struct {
	repo      repository.AuthRepository
	messenger Messenger
	profiles  ProfileToucher
	log       zerolog.Logger
}

// NewAuthService wires the OTP and session flows. profiles may be nil, in
// which case user logins leave no profile behind.
func NewAuthService(repo repository.AuthRepository, messenger Messenger, profiles ProfileToucher) AuthService {
	return &authService{
		repo:      repo,
		messenger: messenger,
		profiles:  profiles,
		log:       logger.Component("auth"),
	}
}

// RequestCode generates a one-time code for identity and sends it to the
// identity's Telegram chat.
func (s *authService) RequestCode(ctx context.Context, realm models.Realm, identity string) error {
	identity = strings.TrimSpace(identity)
	if err := validation.ValidateTelegramID(identity); err != nil {
		return errors.NewValidationError(idField(realm), err.Error())
	}
	chatID, err := strconv.ParseInt(identity, 10, 64)
	if err != nil {
		return errors.NewValidationError(idField(realm), "telegram id is out of range")
	}
	if !s.messenger.HasToken() {
		metrics.ObserveOTP(realm.Name, "config_error")
		return errors.NewConfigError("Bot token not configured")
	}

	code, err := random.Digits(realm.CodeMin, realm.CodeMax, realm.CodeWidth)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "Internal server error")
	}
	if err := s.repo.SaveCode(ctx, realm, identity, code, models.CodeTTL); err != nil {
		return errors.NewStoreError("save code", err)
	}

	if err := s.messenger.SendMessage(ctx, chatID, fmt.Sprintf(realm.MessageFormat, code), ""); err != nil {
		metrics.ObserveOTP(realm.Name, "failed")
		s.log.Warn().Err(err).Str("realm", realm.Name).Str("identity", identity).Msg("Failed to dispatch code")
		return telegram.DispatchError(err, "Failed to send code")
	}

	metrics.ObserveOTP(realm.Name, "sent")
	s.log.Info().Str("realm", realm.Name).Str("identity", identity).Msg("Code dispatched")
	return nil
}

// Verify redeems a code and returns a fresh session token. Codes are single
// use: the code is deleted in the same transaction that stores the session,
// so a failed verify leaves the code in place.
func (s *authService) Verify(ctx context.Context, realm models.Realm, identity, code string) (string, error) {
	identity, code = strings.TrimSpace(identity), strings.TrimSpace(code)
	if identity == "" || code == "" {
		return "", errors.NewInvalidCodeError()
	}

	stored, err := s.repo.GetCode(ctx, realm, identity)
	if err != nil {
		return "", errors.NewStoreError("load code", err)
	}
	if stored == "" || stored != code {
		s.log.Debug().Str("realm", realm.Name).Str("identity", identity).Msg("Code rejected")
		return "", errors.NewInvalidCodeError()
	}

	token, err := s.prepareSession(ctx, realm, identity)
	if err != nil {
		return "", err
	}
	if err := s.repo.RedeemCode(ctx, realm, identity, code, token); err != nil {
		if stderrors.Is(err, repository.ErrCodeMismatch) {
			// redeemed or expired since the check above
			return "", errors.NewInvalidCodeError()
		}
		return "", errors.NewStoreError("redeem code", err)
	}

	s.sessionIssued(realm, identity, "otp")
	return token, nil
}

// IssueSession mints a token for an already verified identity.
func (s *authService) IssueSession(ctx context.Context, realm models.Realm, identity, method string) (string, error) {
	token, err := s.prepareSession(ctx, realm, identity)
	if err != nil {
		return "", err
	}
	if err := s.repo.SaveSession(ctx, realm, token, identity); err != nil {
		return "", errors.NewStoreError("save session", err)
	}

	s.sessionIssued(realm, identity, method)
	return token, nil
}

// prepareSession records the user login and generates a token. It runs
// before the session is stored so a failure leaves no session behind.
func (s *authService) prepareSession(ctx context.Context, realm models.Realm, identity string) (string, error) {
	if realm.Name == models.UserRealm.Name && s.profiles != nil {
		if err := s.profiles.TouchLogin(ctx, identity); err != nil {
			return "", err
		}
	}

	token, err := random.Hex(models.TokenBytes)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "Internal server error")
	}
	return token, nil
}

func (s *authService) sessionIssued(realm models.Realm, identity, method string) {
	metrics.ObserveSession(realm.Name, method)
	s.log.Info().Str("realm", realm.Name).Str("identity", identity).Str("method", method).Msg("Session issued")
}

func (s *authService) Resolve(ctx context.Context, realm models.Realm, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	return s.repo.GetSession(ctx, realm, token)
}

func (s *authService) Revoke(ctx context.Context, realm models.Realm, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.DeleteSession(ctx, realm, token); err != nil {
		return errors.NewStoreError("delete session", err)
	}
	return nil
}

func (s *authService) ResolveAdmin(ctx context.Context, token string) (string, error) {
	return s.Resolve(ctx, models.AdminRealm, token)
}

func (s *authService) ResolveUser(ctx context.Context, token string) (string, error) {
	return s.Resolve(ctx, models.UserRealm, token)
}

func idField(realm models.Realm) string {
	if realm.Name == models.AdminRealm.Name {
		return "admin_id"
	}
	return "telegram_id"
}
