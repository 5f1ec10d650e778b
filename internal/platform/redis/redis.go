package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client used as the key-value store.
type Client struct {
	*redis.Client
}

// Open creates a new Redis client and pings it to validate the connection.
func Open(ctx context.Context, addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("empty redis addr")
	}
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{Client: c}, nil
}

// Probe round-trips a short-lived key to prove the store accepts writes.
func (c *Client) Probe(ctx context.Context, key string) error {
	stamp := time.Now().UTC().Format(time.RFC3339Nano)
	if err := c.Set(ctx, key, stamp, time.Minute).Err(); err != nil {
		return fmt.Errorf("probe write: %w", err)
	}
	got, err := c.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("probe read: %w", err)
	}
	if got != stamp {
		return fmt.Errorf("probe read back %q, wrote %q", got, stamp)
	}
	return nil
}
