package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"portal-backend/internal/features/user/models"
	"portal-backend/internal/features/user/repository"
	redisstore "portal-backend/internal/platform/redis"
)

type userRepository struct {
	client *redis.Client
}

func NewUserRepository(client *redis.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func userKey(telegramID string) string {
	return "user:" + telegramID
}

func (r *userRepository) GetByID(ctx context.Context, telegramID string) (*models.User, error) {
	var user models.User
	found, err := redisstore.GetJSON(ctx, r.client, userKey(telegramID), &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, telegramID string, fn repository.Mutator) (*models.User, error) {
	key := userKey(telegramID)
	var result models.User

	err := redisstore.Transact(ctx, r.client, func(tx *redis.Tx) error {
		result = models.User{}
		found, err := redisstore.GetJSON(ctx, tx, key, &result)
		if err != nil {
			return err
		}
		if err := fn(&result, found); err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return redisstore.SetJSON(ctx, pipe, key, &result, 0)
		})
		return err
	}, key)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
