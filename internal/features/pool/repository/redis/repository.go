package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"portal-backend/internal/features/pool/models"
	"portal-backend/internal/features/pool/repository"
	redisstore "portal-backend/internal/platform/redis"
)

// Pool lists live in the kv: namespace so the admin KV proxy can reach them
// as scanner_addresses_<cc> and used_addresses_<cc>.
func AvailableKey(country string) string {
	return "kv:scanner_addresses_" + country
}

func UsedKey(country string) string {
	return "kv:used_addresses_" + country
}

func HistoryKey(owner, country string) string {
	return fmt.Sprintf("pool:history:%s:%s", owner, country)
}

type poolRepository struct {
	client *redis.Client
}

func NewPoolRepository(client *redis.Client) repository.PoolRepository {
	return &poolRepository{client: client}
}

func (r *poolRepository) Load(ctx context.Context, country string) (*models.State, error) {
	return load(ctx, r.client, country, "")
}

func (r *poolRepository) LoadHistory(ctx context.Context, owner, country string) ([]models.HistoryEntry, error) {
	var history []models.HistoryEntry
	if _, err := redisstore.GetJSON(ctx, r.client, HistoryKey(owner, country), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *poolRepository) Mutate(ctx context.Context, country, owner string, fn func(state *models.State) error) error {
	keys := []string{AvailableKey(country), UsedKey(country)}
	if owner != "" {
		keys = append(keys, HistoryKey(owner, country))
	}

	return redisstore.Transact(ctx, r.client, func(tx *redis.Tx) error {
		state, err := load(ctx, tx, country, owner)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := redisstore.SetJSON(ctx, pipe, AvailableKey(country), orEmpty(state.Available), 0); err != nil {
				return err
			}
			if err := redisstore.SetJSON(ctx, pipe, UsedKey(country), orEmpty(state.Used), 0); err != nil {
				return err
			}
			if owner != "" {
				return redisstore.SetJSON(ctx, pipe, HistoryKey(owner, country), orEmpty(state.History), models.HistoryRetention)
			}
			return nil
		})
		return err
	}, keys...)
}

func (r *poolRepository) Delete(ctx context.Context, country string) error {
	return r.client.Del(ctx, AvailableKey(country), UsedKey(country)).Err()
}

func load(ctx context.Context, g redisstore.Getter, country, owner string) (*models.State, error) {
	state := &models.State{}
	if _, err := redisstore.GetJSON(ctx, g, AvailableKey(country), &state.Available); err != nil {
		return nil, err
	}
	if _, err := redisstore.GetJSON(ctx, g, UsedKey(country), &state.Used); err != nil {
		return nil, err
	}
	if owner != "" {
		if _, err := redisstore.GetJSON(ctx, g, HistoryKey(owner, country), &state.History); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// orEmpty keeps empty lists stored as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
