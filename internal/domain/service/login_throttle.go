package service

import "context"

// LoginThrottle counts failed logins per key within a fixed window.
type LoginThrottle interface {
	// Allow reports whether another attempt is permitted for key.
	Allow(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
