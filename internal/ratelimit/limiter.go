package ratelimit

import "context"

// Limiter reports whether one more request from key fits the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
