package out

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	storeout "mindmate/internal/modules/store/port/out"
	apperrors "mindmate/internal/platform/errors"
)

// RedisBackend keeps the document under a single key.
type RedisBackend struct {
	rdb *goredis.Client
	key string
}

func NewRedisBackend(ctx context.Context, addr string, db int, key string) (*RedisBackend, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisBackend{rdb: rdb, key: key}, nil
}

var _ storeout.Backend = (*RedisBackend)(nil)

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	payload, err := b.rdb.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("redis get document: %w", err)
	}
	return payload, nil
}

func (b *RedisBackend) Store(ctx context.Context, payload []byte) error {
	if err := b.rdb.Set(ctx, b.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set document: %w", err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}
