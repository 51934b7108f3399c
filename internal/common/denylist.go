package common

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist records access tokens revoked by logout until they would have
// expired anyway.
type Denylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const denylistPrefix = "denylist:"

type RedisDenylist struct {
	client *redis.Client
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (d *RedisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistPrefix+token, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, denylistPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}
	return n > 0, nil
}

// NoopDenylist is used when no Redis address is configured; logout then only
// clears cookies and the stored refresh token.
type NoopDenylist struct{}

func (NoopDenylist) Revoke(context.Context, string, time.Duration) error { return nil }
func (NoopDenylist) IsRevoked(context.Context, string) (bool, error)     { return false, nil }
