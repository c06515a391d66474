package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewCache connects a Redis client. Callers treat a nil client as "cache
// disabled" and keep serving from the store.
func NewCache(ctx context.Context, addr string, username string, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
