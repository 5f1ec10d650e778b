package service

import (
	"bytes"
	"context"
	"encoding/json"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/validation"
	"portal-backend/internal/features/kv/repository"
)

// KVService is the admin pass-through over the kv: namespace. Values are
// arbitrary JSON documents.
type KVService interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type kvService struct {
	repo repository.KVRepository
}

func NewKVService(repo repository.KVRepository) KVService {
	return &kvService{repo: repo}
}

func (s *kvService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	if err := validation.ValidateKey(key); err != nil {
		return nil, errors.NewValidationError("key", "Key is required")
	}

	value, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, errors.NewStoreError("read key", err)
	}
	if value == nil {
		return nil, errors.NewNotFoundError("Key not found")
	}
	if !json.Valid(value) {
		logger.Warn().Str("key", key).Msg("Stored value is not JSON")
		return nil, errors.New(errors.ErrCodeStore, "Failed to read key")
	}
	return value, nil
}

func (s *kvService) Put(ctx context.Context, key string, value []byte) error {
	if err := validation.ValidateKey(key); err != nil {
		return errors.NewValidationError("key", "Key is required")
	}
	value = bytes.TrimSpace(value)
	if len(value) == 0 || !json.Valid(value) {
		return errors.NewValidationError("body", "Body must be valid JSON")
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, value); err != nil {
		return errors.NewValidationError("body", "Body must be valid JSON")
	}
	if err := s.repo.Put(ctx, key, compact.Bytes()); err != nil {
		return errors.NewStoreError("write key", err)
	}
	logger.Info().Str("key", key).Int("bytes", compact.Len()).Msg("KV entry written")
	return nil
}

func (s *kvService) Delete(ctx context.Context, key string) error {
	if err := validation.ValidateKey(key); err != nil {
		return errors.NewValidationError("key", "Key is required")
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return errors.NewStoreError("delete key", err)
	}
	logger.Info().Str("key", key).Msg("KV entry deleted")
	return nil
}
