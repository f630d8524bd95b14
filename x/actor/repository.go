//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package actor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
)

const (
	userCacheTTL         = 300 // seconds
	defaultProjectionTTL = 360 * time.Minute
)

// Repository is the interface for actor repository
type Repository interface {
	GetUser(ctx context.Context, id string) (core.User, error)
	GetProjection(ctx context.Context, userID string) ([]string, error)
	SetProjection(ctx context.Context, userID string, permissions []string) error
	DeleteProjection(ctx context.Context, userID string) error
}

type repository struct {
	db     *gorm.DB
	rdb    *redis.Client
	mc     *memcache.Client
	config util.Config
}

// NewRepository creates a new actor repository
func NewRepository(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) Repository {
	return &repository{db, rdb, mc, config}
}

// GetUser returns a user by ID, serving hot rows from memcached.
func (r *repository) GetUser(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.GetUser")
	defer span.End()

	key := fmt.Sprintf("user:%s", id)
	if item, err := r.mc.Get(key); err == nil {
		var user core.User
		if err := json.Unmarshal(item.Value, &user); err == nil {
			return user, nil
		}
	}

	var user core.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.User{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.User{}, errors.Wrap(err, "failed to load user")
	}

	if body, err := json.Marshal(user); err == nil {
		r.mc.Set(&memcache.Item{Key: key, Value: body, Expiration: userCacheTTL})
	}

	return user, nil
}

// GetProjection returns the cached permission projection for a user.
func (r *repository) GetProjection(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.GetProjection")
	defer span.End()

	val, err := r.rdb.Get(ctx, projectionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to read projection cache")
	}

	var permissions []string
	if err := json.Unmarshal([]byte(val), &permissions); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to decode projection cache")
	}

	return permissions, nil
}

// SetProjection caches a user's permission projection until the next
// session refresh.
func (r *repository) SetProjection(ctx context.Context, userID string, permissions []string) error {
	ctx, span := tracer.Start(ctx, "Actor.Repository.SetProjection")
	defer span.End()

	body, err := json.Marshal(permissions)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to encode projection")
	}

	ttl := defaultProjectionTTL
	if r.config.Steward.ProjectionTTLMinutes > 0 {
		ttl = time.Duration(r.config.Steward.ProjectionTTLMinutes) * time.Minute
	}

	return r.rdb.Set(ctx, projectionKey(userID), body, ttl).Err()
}

// DeleteProjection drops the cached projection, forcing a recompute on the
// next lookup. Called when a user's role changes mid-session.
func (r *repository) DeleteProjection(ctx context.Context, userID string) error {
	ctx, span := tracer.Start(ctx, "Actor.Repository.DeleteProjection")
	defer span.End()

	return r.rdb.Del(ctx, projectionKey(userID)).Err()
}

func projectionKey(userID string) string {
	return fmt.Sprintf("projection:%s", userID)
}
