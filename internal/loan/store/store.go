// Package store persists applications behind time-bounded cache keys. Every
// record is written exactly once and evicted by Redis when its TTL elapses;
// an expired read is indistinguishable from an unknown identifier.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"loan-intake/internal/common/database"
	apperrors "loan-intake/internal/common/errors"
	"loan-intake/internal/common/metrics"
	"loan-intake/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "loan:"

type ApplicationStore struct {
	redis *database.RedisClient
	ttl   time.Duration
}

func New(redisClient *database.RedisClient, ttl time.Duration) *ApplicationStore {
	return &ApplicationStore{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Put writes the application under loan:<id>. Writing an existing key
// resets its TTL (plain Redis SET semantics).
func (s *ApplicationStore) Put(ctx context.Context, app *models.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	if err := s.redis.Set(ctx, keyPrefix+app.ID, data, s.ttl); err != nil {
		metrics.StoreOperationFailures.WithLabelValues("put").Inc()
		return apperrors.NewStoreUnavailableError(err)
	}
	return nil
}

// Get returns the live application for id. A missing key maps to the
// not-found error; any other failure is a transport problem and surfaces
// as store-unavailable.
func (s *ApplicationStore) Get(ctx context.Context, id string) (*models.Application, error) {
	val, err := s.redis.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewApplicationNotFoundError(id)
		}
		metrics.StoreOperationFailures.WithLabelValues("get").Inc()
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	var app models.Application
	if err := json.Unmarshal([]byte(val), &app); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &app, nil
}
