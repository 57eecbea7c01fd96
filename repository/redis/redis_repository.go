package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/muhammadheryan/inventory-workflow/cmd/redis"
)

// Repository holds login sessions and the per-user permission cache.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetPermissions(ctx context.Context, userID uint64, slugs []string, ttl time.Duration) error
	GetPermissions(ctx context.Context, userID uint64) ([]string, bool, error)
	DeletePermissions(ctx context.Context, userID uint64) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func permissionKey(userID uint64) string {
	return "perm:user:" + strconv.FormatUint(userID, 10)
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

// SetPermissions caches the slug list of a user. An empty list is cached as well.
func (r *redis) SetPermissions(ctx context.Context, userID uint64, slugs []string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	if slugs == nil {
		slugs = []string{}
	}
	payload, err := json.Marshal(slugs)
	if err != nil {
		return err
	}
	return client.Set(ctx, permissionKey(userID), payload, ttl).Err()
}

// GetPermissions returns the cached slugs; the bool is false on a cache miss.
func (r *redis) GetPermissions(ctx context.Context, userID uint64) ([]string, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, false, nil
	}
	raw, err := client.Get(ctx, permissionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var slugs []string
	if err := json.Unmarshal(raw, &slugs); err != nil {
		return nil, false, err
	}
	return slugs, true, nil
}

func (r *redis) DeletePermissions(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, permissionKey(userID)).Err()
}
