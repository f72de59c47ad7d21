package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/quangnguyen9723/finance-manager/internal/pkg/database"
	"github.com/quangnguyen9723/finance-manager/services/auth"
)

const revokedKeyPrefix = "auth:revoked:"

// RedisRevocationRepo stores signed-out token ids in Redis. Entries carry a
// TTL equal to the token's remaining lifetime, so the denylist cleans itself.
type RedisRevocationRepo struct {
	redis *database.RedisClient
}

// NewRevocationRepository creates a new revocation repository
func NewRevocationRepository(redisClient *database.RedisClient) auth.RevocationRepo {
	return &RedisRevocationRepo{redis: redisClient}
}

// Revoke marks a token id as signed out until it expires
func (r *RedisRevocationRepo) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.redis.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token id has been signed out
func (r *RedisRevocationRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	exists, err := r.redis.Exists(ctx, revokedKeyPrefix+tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return exists, nil
}
