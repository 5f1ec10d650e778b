package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"portal-backend/internal/features/auth/models"
	"portal-backend/internal/features/auth/repository"
	redisstore "portal-backend/internal/platform/redis"
)

type authRepository struct {
	client *redis.Client
}

func NewAuthRepository(client *redis.Client) repository.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) SaveCode(ctx context.Context, realm models.Realm, identity, code string, ttl time.Duration) error {
	return r.client.Set(ctx, realm.CodeKey(identity), code, ttl).Err()
}

func (r *authRepository) GetCode(ctx context.Context, realm models.Realm, identity string) (string, error) {
	return redisstore.GetString(ctx, r.client, realm.CodeKey(identity))
}

func (r *authRepository) RedeemCode(ctx context.Context, realm models.Realm, identity, code, token string) error {
	key := realm.CodeKey(identity)
	return redisstore.Transact(ctx, r.client, func(tx *redis.Tx) error {
		stored, err := redisstore.GetString(ctx, tx, key)
		if err != nil {
			return err
		}
		if stored == "" || stored != code {
			return repository.ErrCodeMismatch
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.Set(ctx, realm.SessionKey(token), identity, realm.SessionTTL)
			return nil
		})
		return err
	}, key)
}

func (r *authRepository) SaveSession(ctx context.Context, realm models.Realm, token, identity string) error {
	return r.client.Set(ctx, realm.SessionKey(token), identity, realm.SessionTTL).Err()
}

func (r *authRepository) GetSession(ctx context.Context, realm models.Realm, token string) (string, error) {
	return redisstore.GetString(ctx, r.client, realm.SessionKey(token))
}

func (r *authRepository) DeleteSession(ctx context.Context, realm models.Realm, token string) error {
	return r.client.Del(ctx, realm.SessionKey(token)).Err()
}
