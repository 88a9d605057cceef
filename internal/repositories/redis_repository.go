package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository counts coupon attempts per cart.
// Returns isAllowed, attempts left, seconds to wait, error.
type RateLimitRepository interface {
	CheckCouponRateLimit(ctx context.Context, cartID string) (bool, int, int, error)
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func couponAttemptsKey(cartID string) string {
	return fmt.Sprintf("coupon_attempts:%s", cartID)
}

func (r *redisRepository) CheckCouponRateLimit(ctx context.Context, cartID string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := couponAttemptsKey(cartID)

	now := r.now()
	nowSec := now.Unix()

	// only attempts after this point are counted
	windowStart := nowSec - int64(r.cfg.WindowSize.Seconds())

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// nanosecond member keeps attempts within the same second distinct
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowSec), Member: now.UnixNano()})

	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, r.cfg.WindowSize)

	_, err := pipe.Exec(ctx)
	if err != nil {
		logger.Error("Redis pipeline execution failed for coupon rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		}).Result()

		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest coupon attempt", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(r.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		retryAfter := max(int64(scores[0].Score)+int64(r.cfg.WindowSize.Seconds())-nowSec, 0)

		logger.Warn("Coupon rate limit exceeded", slog.String("cart_id", cartID), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter), nil
	}

	logger.Debug("Coupon rate limit check passed", slog.String("cart_id", cartID), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}

// memoryRateLimiter keeps the same sliding window in process for
// deployments without redis.
type memoryRateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	cfg      *config.RateConfig
	now      func() time.Time
}

func NewMemoryRateLimitRepo(cfg *config.RateConfig) RateLimitRepository {
	return &memoryRateLimiter{attempts: make(map[string][]time.Time), cfg: cfg, now: time.Now}
}

func (m *memoryRateLimiter) CheckCouponRateLimit(ctx context.Context, cartID string) (bool, int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cutoff := now.Add(-m.cfg.WindowSize)

	window := m.attempts[cartID][:0]
	for _, at := range m.attempts[cartID] {
		if at.After(cutoff) {
			window = append(window, at)
		}
	}

	window = append(window, now)
	m.attempts[cartID] = window

	attempts := int64(len(window))
	if attempts > m.cfg.MaxAttempts {
		retryAfter := window[0].Add(m.cfg.WindowSize).Sub(now)
		middleware.LoggerFromContext(ctx).Warn("Coupon rate limit exceeded", slog.String("cart_id", cartID), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter.Seconds()), nil
	}

	return true, int(m.cfg.MaxAttempts - attempts), 0, nil
}
