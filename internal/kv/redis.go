package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"logiless/internal/config"
)

const (
	fieldValue     = "value"
	fieldExpiresAt = "expires_at"
)

// RedisStore keeps each record as a redis hash with separate value and
// expiry fields. HSET writes both fields in one command, so a concurrent
// reader sees either the old record or the new one.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) GetWithMetadata(ctx context.Context, key string) ([]byte, Metadata, error) {
	vals, err := s.rdb.HMGet(ctx, key, fieldValue, fieldExpiresAt).Result()
	if err != nil {
		return nil, Metadata{}, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return nil, Metadata{}, ErrNotFound
	}

	meta := Metadata{}
	if expRaw, ok := vals[1].(string); ok && expRaw != "" {
		if exp, err := time.Parse(time.RFC3339Nano, expRaw); err == nil {
			meta.ExpiresAt = &exp
		}
	}
	return []byte(raw), meta, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte, meta Metadata) error {
	fields := map[string]any{
		fieldValue:     string(value),
		fieldExpiresAt: "",
	}
	if meta.ExpiresAt != nil {
		fields[fieldExpiresAt] = meta.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return s.rdb.HSet(ctx, key, fields).Err()
}
