package repository

import (
	"context"
	"encoding/json"
)

// Prefix namespaces proxy keys so admins cannot reach sessions or codes.
const Prefix = "kv:"

type KVRepository interface {
	// Get returns nil when the key does not exist.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
}
