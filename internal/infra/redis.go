package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the shared client used for the job queues, the product
// list cache and the rate limiter. One client, injected everywhere.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
