// Package redis keeps short-lived auth state in Redis: revoked access token
// ids.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/twitter-backend/internal/config"
)

// NewClient connects to Redis and pings it for fail-fast validation.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// Denylist records token ids that must no longer authenticate.
// Entries expire together with the token they revoke.
type Denylist struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewDenylist creates a denylist storing keys under prefix.
func NewDenylist(client goredis.UniversalClient, prefix string) *Denylist {
	return &Denylist{client: client, prefix: prefix, now: time.Now}
}

// Revoke denies tokenID until expiresAt. Already expired tokens are ignored.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.prefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}

// Ping reports whether Redis is reachable.
func (d *Denylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
