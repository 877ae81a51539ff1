package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/travel-recommender/backend/internal/domain"
	"github.com/pkordes/travel-recommender/backend/internal/metrics"
)

// CatalogCacheKey is the redis key holding the JSON-encoded catalog snapshot.
const CatalogCacheKey = "travel:catalog:destinations:v1"

// ErrCacheMiss is returned by CacheStore.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheStore is the small slice of a key/value cache that CachedDestinationRepo needs.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// redisStore adapts a redis client to CacheStore.
type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore returns a CacheStore backed by client.
func NewRedisStore(client redis.UniversalClient) CacheStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// CachedDestinationRepo is a read-through cache in front of another DestinationRepo.
// Only List (the full catalog snapshot) is cached; lookups by ID and paged
// browsing always go to the underlying repo. Cache failures are logged and
// never surface to callers.
type CachedDestinationRepo struct {
	next   DestinationRepo
	store  CacheStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedDestinationRepo wraps next with a cache stored in store for ttl.
func NewCachedDestinationRepo(next DestinationRepo, store CacheStore, ttl time.Duration, logger *slog.Logger) *CachedDestinationRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedDestinationRepo{next: next, store: store, ttl: ttl, logger: logger}
}

// List returns the catalog from cache when present, otherwise from the
// underlying repo, populating the cache on the way out. Every call decodes a
// fresh slice, so callers never share backing arrays.
func (r *CachedDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	raw, err := r.store.Get(ctx, CatalogCacheKey)
	switch {
	case err == nil:
		var dests []domain.Destination
		derr := json.Unmarshal(raw, &dests)
		if derr == nil {
			metrics.CatalogCacheHits.Inc()
			return dests, nil
		}
		metrics.CatalogCacheErrors.WithLabelValues("decode").Inc()
		r.logger.WarnContext(ctx, "catalog cache decode failed", "error", derr)
	case errors.Is(err, ErrCacheMiss):
	default:
		metrics.CatalogCacheErrors.WithLabelValues("get").Inc()
		r.logger.WarnContext(ctx, "catalog cache read failed", "error", err)
	}
	metrics.CatalogCacheMisses.Inc()

	dests, err := r.next.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.CachedDestinationRepo.List: %w", err)
	}

	if raw, err := json.Marshal(dests); err != nil {
		metrics.CatalogCacheErrors.WithLabelValues("encode").Inc()
		r.logger.WarnContext(ctx, "catalog cache encode failed", "error", err)
	} else if err := r.store.Set(ctx, CatalogCacheKey, raw, r.ttl); err != nil {
		metrics.CatalogCacheErrors.WithLabelValues("set").Inc()
		r.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
	return dests, nil
}

// GetByID delegates to the underlying repo.
func (r *CachedDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return r.next.GetByID(ctx, id)
}

// ListPaged delegates to the underlying repo.
func (r *CachedDestinationRepo) ListPaged(ctx context.Context, filter domain.DestinationFilter, p domain.PaginationParams) ([]domain.Destination, int64, error) {
	return r.next.ListPaged(ctx, filter, p)
}
