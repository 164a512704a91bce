package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration. Used to keep
// completed transcripts around so repeated status polls skip the provider.
type Store interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
