package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the token in Redis so several CMS processes can share one
// operator session. Selected with TOKEN_STORE=redis.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisStoreWithClient lets tests inject a client pointed at miniredis.
func NewRedisStoreWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	val, err := s.rdb.Get(ctx, TokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	return val, nil
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	if err := s.rdb.Set(ctx, TokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, TokenKey).Err(); err != nil {
		return fmt.Errorf("redis clear token: %w", err)
	}
	return nil
}
