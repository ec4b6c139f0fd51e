// Package ratelimit bounds how often a city's ambient content can be
// regenerated, using a fixed hourly window in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRateLimiter(redisURL string) (*RateLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	return &RateLimiter{client: client, now: time.Now}, nil
}

// Allow counts one generation request for the city in the current hourly
// window and reports whether it is within the limit.
func (rl *RateLimiter) Allow(ctx context.Context, cityID string, limit int) (bool, error) {
	key := fmt.Sprintf("genlimit:city:%s:%s", cityID, rl.now().Format("2006-01-02-15"))

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		rl.client.Expire(ctx, key, time.Hour)
	}

	return count <= int64(limit), nil
}

func (rl *RateLimiter) Close() error {
	return rl.client.Close()
}
