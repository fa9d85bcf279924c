package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// rateRedis is the slice of the redis client the limiter needs.
type rateRedis interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RateLimiter applies a fixed-window request limit per client IP. The zero
// value is a disabled limiter whose middleware passes everything through.
type RateLimiter struct {
	redis   rateRedis
	logger  *zap.Logger
	enabled bool
	limit   int64
	window  time.Duration
	prefix  string
}

func NewRateLimiter(redisClient rateRedis, logger *zap.Logger, limit int, window time.Duration) *RateLimiter {
	if redisClient == nil || limit <= 0 || window <= 0 {
		return &RateLimiter{}
	}
	return &RateLimiter{
		redis:   redisClient,
		logger:  logger,
		enabled: true,
		limit:   int64(limit),
		window:  window,
		prefix:  "ratelimit",
	}
}

// Allow reports whether the key may proceed, along with the remaining
// budget and the window reset time.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (allowed bool, remaining int64, resetAt time.Time, err error) {
	if !rl.enabled {
		return true, 0, time.Time{}, nil
	}

	now := time.Now()
	redisKey := fmt.Sprintf("%s:%s", rl.prefix, key)

	count, err := rl.redis.Incr(ctx, redisKey)
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("rate limiter incr failed: %w", err)
	}

	if count == 1 {
		if _, err := rl.redis.Expire(ctx, redisKey, rl.window); err != nil {
			rl.logger.Warn("failed to set rate limit ttl", zap.Error(err), zap.String("key", redisKey))
		}
	}

	ttl, err := rl.redis.TTL(ctx, redisKey)
	if err != nil {
		rl.logger.Warn("failed to get rate limit ttl", zap.Error(err), zap.String("key", redisKey))
		ttl = rl.window
	}

	remaining = rl.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.limit, remaining, now.Add(ttl), nil
}

// Middleware enforces the limit and annotates responses with the usual
// X-RateLimit headers. Redis outages fail open.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if !rl.enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, resetAt, err := rl.Allow(r.Context(), clientIP(r))
		if err != nil {
			rl.logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(rl.limit, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
