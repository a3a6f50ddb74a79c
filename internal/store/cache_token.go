package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	resetKeyPrefix   = "reset:"
	revokedKeyPrefix = "revoked:"
)

// tokenCache is the redis-backed implementation of [TokenCache].
//
// Keys:
//   - reset:<hmac of reset token> → user id, expires with the reset token;
//   - revoked:<jti> → "1", expires with the bearer token.
type tokenCache struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewConnectRedis opens a redis client and pings it.
func NewConnectRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewTokenCache constructs a [TokenCache] on top of rdb.
func NewTokenCache(rdb *redis.Client, logger *logger.Logger) TokenCache {
	logger.Debug().Msg("creating token cache")
	return &tokenCache{rdb: rdb, logger: logger}
}

func (c *tokenCache) SaveResetToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, resetKeyPrefix+tokenHash, userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

func (c *tokenCache) ConsumeResetToken(ctx context.Context, tokenHash string) (string, error) {
	userID, err := c.rdb.GetDel(ctx, resetKeyPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrResetTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func (c *tokenCache) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	if err := c.rdb.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (c *tokenCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.rdb.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
