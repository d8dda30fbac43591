// Package ratelimit throttles failed logins with fixed-window counters in Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mediahub/config"
	"mediahub/internal/domain/lifecycle"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const loginKeyPrefix = "mediahub:login:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed throttle, or a no-op one when Redis is not configured.
func New(params Params) service.LoginThrottle {
	rc := params.Config.Redis
	if rc == nil || rc.Addr == "" {
		params.Logger.Info("Redis not configured, login throttling disabled")

		return noopThrottle{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	maxAttempts, window := 5, 15*time.Minute
	if lc := params.Config.LoginThrottle; lc != nil {
		maxAttempts, window = lc.MaxAttempts, lc.Window
	}

	return NewRedisThrottle(client, maxAttempts, window)
}

// redisThrottle counts failures per key. The window starts at the first failure.
type redisThrottle struct {
	redis       redis.UniversalClient
	maxAttempts int64
	window      time.Duration
}

// NewRedisThrottle builds a throttle over an existing client.
func NewRedisThrottle(client redis.UniversalClient, maxAttempts int, window time.Duration) service.LoginThrottle {
	return &redisThrottle{
		redis:       client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// Allow permits an attempt while fewer than maxAttempts failures are recorded.
func (t *redisThrottle) Allow(ctx context.Context, key string) (bool, error) {
	count, err := t.redis.Get(ctx, loginKey(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to read login attempts")
	}

	return count < t.maxAttempts, nil
}

func (t *redisThrottle) RecordFailure(ctx context.Context, key string) error {
	k := loginKey(key)

	count, err := t.redis.Incr(ctx, k).Result()
	if err != nil {
		return errors.Wrap(err, "failed to record login failure")
	}

	// Fixed window: the TTL is set on the first hit only.
	if count == 1 {
		if err := t.redis.Expire(ctx, k, t.window).Err(); err != nil {
			return errors.Wrap(err, "failed to set login window")
		}
	}

	return nil
}

func (t *redisThrottle) Reset(ctx context.Context, key string) error {
	return errors.Wrap(t.redis.Del(ctx, loginKey(key)).Err(), "failed to reset login attempts")
}

func loginKey(identifier string) string {
	return loginKeyPrefix + strings.ToLower(strings.TrimSpace(identifier))
}

type noopThrottle struct{}

func (noopThrottle) Allow(context.Context, string) (bool, error) { return true, nil }
func (noopThrottle) RecordFailure(context.Context, string) error { return nil }
func (noopThrottle) Reset(context.Context, string) error         { return nil }
