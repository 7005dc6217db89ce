// file: service/login_limiter.go

package service

import (
	"context"
	"fmt"
	"time"

	"monumento-api/logger"
)

// LoginLimiter throttles login attempts per client using a fixed window
// counter in Redis. The first attempt in a window sets the key's TTL;
// subsequent attempts only increment it.
type LoginLimiter struct {
	cache       ICacheClient
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(cache ICacheClient, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		cache:       cache,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow reports whether the client identified by key may attempt a login.
// On a cache failure it lets the attempt through; throttling is a
// protection, not a dependency.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	cacheKey := fmt.Sprintf("login_attempts:%s", key)

	count, err := l.cache.Incr(ctx, cacheKey).Result()
	if err != nil {
		logger.Log.WithError(err).Warn("Login limiter unavailable, allowing attempt")
		return true
	}

	if count == 1 {
		l.cache.Expire(ctx, cacheKey, l.window)
	}

	return count <= int64(l.maxAttempts)
}
