// Package cache holds the redis-backed read caches. Only roles are cached:
// they sit on the hot path of every permission check and change rarely.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"emotehub/internal/emotes/model"
	"emotehub/internal/emotes/repository"
	"emotehub/internal/emotes/util"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	roleCachePrefix = "emotehub:role:"
	// DefaultRoleTTL bounds staleness when an invalidation is lost.
	DefaultRoleTTL = 5 * time.Minute
)

// RoleCache fronts the role collection with redis. A nil client degrades to
// straight repository reads, so deployments without redis keep working.
type RoleCache struct {
	repo   repository.Repository
	client *redis.Client
	ttl    time.Duration
}

func NewRoleCache(repo repository.Repository, client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = DefaultRoleTTL
	}
	return &RoleCache{repo: repo, client: client, ttl: ttl}
}

func roleKey(id primitive.ObjectID) string {
	return roleCachePrefix + id.Hex()
}

// GetRole returns the cached role, falling back to the repository on miss.
// Cache failures are logged and never surfaced; the repository is the source
// of truth.
func (c *RoleCache) GetRole(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	if c.client != nil {
		cached, err := c.client.Get(ctx, roleKey(id)).Result()
		if err == nil {
			var role model.Role
			if err := json.Unmarshal([]byte(cached), &role); err == nil {
				return &role, nil
			}
		} else if err != redis.Nil {
			util.GetLogger().Warn("role cache read failed", "role_id", id.Hex(), "error", err)
		}
	}

	role, err := c.repo.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	if c.client != nil {
		if data, err := json.Marshal(role); err == nil {
			if err := c.client.Set(ctx, roleKey(id), data, c.ttl).Err(); err != nil {
				util.GetLogger().Warn("role cache write failed", "role_id", id.Hex(), "error", err)
			}
		}
	}
	return role, nil
}

// Invalidate drops the cached copy after a role mutation.
func (c *RoleCache) Invalidate(ctx context.Context, id primitive.ObjectID) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, roleKey(id)).Err()
}
