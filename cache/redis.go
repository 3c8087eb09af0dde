package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultPrefix namespaces keys written by Redis.
const defaultPrefix = "orienteer:tour"

// Redis stores entries as JSON strings with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedis wraps client. A zero ttl keeps entries forever; an empty prefix
// falls back to "orienteer:tour".
func NewRedis(client *redis.Client, ttl time.Duration, prefix string) *Redis {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Redis{client: client, ttl: ttl, prefix: prefix}
}

func (r *Redis) key(k string) string { return r.prefix + ":" + k }

// Get fetches and decodes the entry for key.
func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("cache: redis get: %w", err)
	}

	var e Entry
	if err = json.Unmarshal(raw, &e); err != nil {
		return Entry{}, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return e, true, nil
}

// Put encodes e and writes it with the configured TTL.
func (r *Redis) Put(ctx context.Context, key string, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err = r.client.Set(ctx, r.key(key), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}

	return nil
}
