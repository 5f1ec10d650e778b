package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"portal-backend/internal/features/kv/repository"
)

type kvRepository struct {
	client *redis.Client
}

func NewKVRepository(client *redis.Client) repository.KVRepository {
	return &kvRepository{client: client}
}

func (r *kvRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := r.client.Get(ctx, repository.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (r *kvRepository) Put(ctx context.Context, key string, value json.RawMessage) error {
	return r.client.Set(ctx, repository.Prefix+key, []byte(value), 0).Err()
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, repository.Prefix+key).Err()
}
