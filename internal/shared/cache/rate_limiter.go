package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// allowScript trims the window, counts what is left and records the request
// only when it fits, all in one round trip.
var allowScript = redis.NewScript(`
	local key = KEYS[1]
	local window_start = ARGV[1]
	local now = ARGV[2]
	local limit = tonumber(ARGV[3])
	local member = ARGV[4]
	local expiry = tonumber(ARGV[5])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current = redis.call('ZCARD', key)
	if current + 1 > limit then
		return 0
	end

	redis.call('ZADD', key, now, member)
	redis.call('PEXPIRE', key, expiry)
	return 1
`)

// RateLimiter is a sliding-window request counter backed by a Redis sorted set.
type RateLimiter struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRateLimiter creates a Redis rate limiter.
func NewRateLimiter(client redis.UniversalClient) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// Allow records one request for key and reports whether it fits in the window.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := r.now().UnixNano()
	windowStart := now - window.Nanoseconds()
	// Requests landing on the same nanosecond still need distinct members.
	member := fmt.Sprintf("%d-%s", now, uuid.NewString())

	allowed, err := allowScript.Run(ctx, r.client, []string{rateLimitKeyPrefix + key},
		strconv.FormatInt(windowStart, 10),
		now,
		limit,
		member,
		window.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("check rate limit: %w", err)
	}
	return allowed == 1, nil
}

// GetRemaining returns how many requests key may still make in the window.
func (r *RateLimiter) GetRemaining(ctx context.Context, key string, limit int, window time.Duration) (int, error) {
	windowStart := r.now().UnixNano() - window.Nanoseconds()

	count, err := r.client.ZCount(ctx, rateLimitKeyPrefix+key,
		"("+strconv.FormatInt(windowStart, 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return max(limit-int(count), 0), nil
}
