package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/pkg/logger"
	"github.com/Iqura-Alam/HireUp/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig controls one limiter instance.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyFunc   func(*gin.Context) string
	KeyPrefix string
	// FailClosed rejects requests when the Redis counter cannot be
	// reached. Auth endpoints set it; everything else degrades to the
	// in-process counter instead.
	FailClosed bool
}

// DefaultRateLimitConfig is the per-IP limiter applied to the whole API.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false,
		KeyFunc:    func(c *gin.Context) string { return c.ClientIP() },
	}
}

// AuthRateLimitConfig is the stricter limiter for login and register.
func AuthRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
		KeyFunc:    func(c *gin.Context) string { return c.ClientIP() },
	}
}

// RateLimitMiddleware counts requests per key per window. The counter
// lives in Redis when a client is configured so limits hold across
// replicas; otherwise a per-process map is used.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	sweepOnce.Do(startSweeper)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if rc := redis.Client(); rc != nil {
			var err error
			count, resetAt, err = redisCount(c.Request.Context(), rc, key, cfg.Window)
			if err != nil {
				if cfg.FailClosed {
					logger.Log.Error("rate limiter unavailable", "error", err.Error(), "path", c.FullPath())
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = memoryCount(key, cfg.Window, now)
			}
		} else {
			count, resetAt = memoryCount(key, cfg.Window, now)
		}

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			writeLimitHeaders(c, cfg.Limit, 0, resetAt)
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"limit", cfg.Limit)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		writeLimitHeaders(c, cfg.Limit, remaining, resetAt)
		c.Next()
	}
}

func writeLimitHeaders(c *gin.Context, limit, remaining int, resetAt time.Time) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
}

// INCR and EXPIRE must be one round trip so the first hit of a window
// cannot leave an unexpiring key behind. Returns {count, ttl}.
const counterScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func redisCount(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, time.Time, error) {
	result, err := client.Eval(ctx, counterScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: unexpected reply %T", result)
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

type memEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	memStore  sync.Map
	sweepOnce sync.Once
)

func memoryCount(key string, window time.Duration, now time.Time) (int, time.Time) {
	v, _ := memStore.LoadOrStore(key, &memEntry{resetAt: now.Add(window)})
	e := v.(*memEntry)

	e.mu.Lock()
	defer e.mu.Unlock()

	if now.After(e.resetAt) {
		e.count = 0
		e.resetAt = now.Add(window)
	}
	e.count++
	return e.count, e.resetAt
}

func startSweeper() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			memStore.Range(func(key, value interface{}) bool {
				e := value.(*memEntry)
				e.mu.Lock()
				expired := now.After(e.resetAt)
				e.mu.Unlock()
				if expired {
					memStore.Delete(key)
				}
				return true
			})
		}
	}()
}
