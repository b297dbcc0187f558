package rate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds throttle tuning parameters.
type Config struct {
	MaxPerWindow int
	Window       time.Duration
}

// Limiter enforces per-context submission budgets using Redis counters.
type Limiter struct {
	redis  redis.UniversalClient
	config Config
}

// New creates a [Limiter] backed by the given Redis client.
func New(redisClient redis.UniversalClient, cfg Config) *Limiter {
	return &Limiter{
		redis:  redisClient,
		config: cfg,
	}
}

// AllowHash records one hash submission for the context and reports
// whether it is within budget.
func (l *Limiter) AllowHash(ctx context.Context, contextIdx int) error {
	return l.allow(ctx, hashKey(contextIdx))
}

// AllowCheck records one check submission for the context and reports
// whether it is within budget.
func (l *Limiter) AllowCheck(ctx context.Context, contextIdx int) error {
	return l.allow(ctx, checkKey(contextIdx))
}

func (l *Limiter) allow(ctx context.Context, key string) error {
	count, err := l.incrementWithTTL(ctx, key, l.config.Window)
	if err != nil {
		return err
	}
	if count > int64(l.config.MaxPerWindow) {
		return ErrThrottled
	}
	return nil
}

func (l *Limiter) incrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	// Fixed-window semantics: set TTL only for the first hit in the window.
	if count == 1 {
		if err := l.redis.Expire(ctx, key, ttl).Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	return count, nil
}

func hashKey(contextIdx int) string {
	return "bh:" + strconv.Itoa(contextIdx)
}

func checkKey(contextIdx int) string {
	return "bc:" + strconv.Itoa(contextIdx)
}
