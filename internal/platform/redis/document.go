package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	txBackoffMin = time.Millisecond
	txBackoffMax = 50 * time.Millisecond
)

// ErrTxConflict is returned when ctx ends before a conflicting transaction
// could commit.
var ErrTxConflict = errors.New("redis: transaction kept conflicting with concurrent writers")

// Getter is satisfied by *redis.Client, *redis.Tx and pipelines.
type Getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Setter is satisfied by *redis.Client, *redis.Tx and pipelines.
type Setter interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// GetJSON decodes the JSON document at key into dest. found is false when
// the key does not exist.
func GetJSON(ctx context.Context, g Getter, key string, dest interface{}) (found bool, err error) {
	data, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it at key; ttl 0 keeps the key forever.
func SetJSON(ctx context.Context, s Setter, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// GetString returns the string at key, or "" when it does not exist.
func GetString(ctx context.Context, g Getter, key string) (string, error) {
	v, err := g.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

// Transact runs fn under WATCH on keys. fn reads through tx and queues its
// writes with tx.TxPipelined; if a watched key changes before EXEC the whole
// read-modify-write is replayed after a jittered backoff, until it commits or
// ctx is done. Errors returned by fn abort without retry.
func Transact(ctx context.Context, client *redis.Client, fn func(tx *redis.Tx) error, keys ...string) error {
	backoff := txBackoffMin
	for {
		err := client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}

		timer := time.NewTimer(backoff/2 + rand.N(backoff/2+1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrTxConflict, ctx.Err())
		case <-timer.C:
		}
		backoff = min(backoff*2, txBackoffMax)
	}
}
