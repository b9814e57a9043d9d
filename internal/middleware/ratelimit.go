package middleware

import (
	"fmt"
	"strconv"
	"time"

	"nexues_backend/internal/logger"
	"nexues_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter - скользящее окно на Redis sorted sets.
// Лимит атомарный: проверка и запись идут одним Lua-скриптом.
type RateLimiter struct {
	client    *redis.Client
	keyPrefix string
}

func NewRateLimiter(client *redis.Client, keyPrefix string) *RateLimiter {
	return &RateLimiter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	Limit     int
}

var slidingWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current = redis.call('ZCARD', key)

	if current < limit then
		local counter = redis.call('INCR', key .. ':counter')
		redis.call('ZADD', key, now, now .. ':' .. counter)
		local expire_seconds = math.ceil(window_ms / 1000)
		redis.call('EXPIRE', key, expire_seconds)
		redis.call('EXPIRE', key .. ':counter', expire_seconds)
		return {1, limit - current - 1, 0}
	else
		local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
		local reset_at = 0
		if oldest and #oldest >= 2 then
			reset_at = tonumber(oldest[2]) + window_ms
		end
		return {0, 0, reset_at}
	end
`)

// Allow проверяет запрос против лимита limit за окно window
func (l *RateLimiter) Allow(c *gin.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	ctx := c.Request.Context()
	now := time.Now()

	result, err := slidingWindowScript.Run(ctx, l.client,
		[]string{l.keyPrefix + key},
		now.UnixMilli(), now.Add(-window).UnixMilli(), limit, window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis script error: %w", err)
	}
	if len(result) != 3 {
		return nil, fmt.Errorf("unexpected redis response length: %d", len(result))
	}

	resetAt := now.Add(window)
	if result[2] > 0 {
		resetAt = time.UnixMilli(result[2])
	}

	return &RateLimitResult{
		Allowed:   result[0] == 1,
		Remaining: int(result[1]),
		ResetAt:   resetAt,
		Limit:     limit,
	}, nil
}

// RateLimitMiddleware ограничивает запросы по IP клиента.
// При nil limiter (Redis не сконфигурирован) лимита нет.
// Ошибка Redis не валит запрос: fail-open.
func RateLimitMiddleware(limiter *RateLimiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		result, err := limiter.Allow(c, key, limit, window)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Rate limit check failed", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			apperrors.HandleError(c, apperrors.ErrRateLimited)
			return
		}

		c.Next()
	}
}
