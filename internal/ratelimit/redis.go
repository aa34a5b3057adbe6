package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares the fixed window across instances: one INCR per
// request on a key that rolls over every window, expired so idle keys do
// not pile up.
type RedisLimiter struct {
	client rueidis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	seconds := int64(l.window.Seconds())
	bucket := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/seconds)

	incr := l.client.B().Incr().Key(bucket).Build()
	count, err := l.client.Do(ctx, incr).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expire := l.client.B().Expire().Key(bucket).Seconds(seconds).Build()
		if err := l.client.Do(ctx, expire).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}
