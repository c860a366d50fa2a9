// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// CachedRepository decorates a [Repository] with a Redis read-through cache
// for single-product lookups.
//
// Redis is an optimization only: cache failures are logged and the call falls
// through to the wrapped repository. Every write evicts the product's key.
type CachedRepository struct {
	Repository
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a Redis cache whose entries live for ttl.
func NewCachedRepository(next Repository, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: next,
		client:     client,
		ttl:        ttl,
		logger:     logger,
	}
}

func cacheKey(id int64) string {
	return constants.RedisPrefixProduct + strconv.FormatInt(id, 10)
}

/*
GetProduct returns the cached product or loads and caches it.

Description: Misses (including a cold or unreachable Redis) go to the wrapped
repository. Not-found results are not cached.
*/
func (repository *CachedRepository) GetProduct(context context.Context, id int64) (*Product, error) {
	key := cacheKey(id)

	raw, err := repository.client.Get(context, key).Bytes()
	switch {
	case err == nil:
		p := &Product{}
		if jsonErr := json.Unmarshal(raw, p); jsonErr == nil {
			return p, nil
		}
		repository.logger.WarnContext(context, "product_cache_corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		repository.logger.WarnContext(context, "product_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}

	p, err := repository.Repository.GetProduct(context, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(p); err == nil {
		if err := repository.client.Set(context, key, payload, repository.ttl).Err(); err != nil {
			repository.logger.WarnContext(context, "product_cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return p, nil
}

// UpdateProduct writes through to the wrapped repository and evicts the cached entry.
func (repository *CachedRepository) UpdateProduct(context context.Context, p *Product) error {
	if err := repository.Repository.UpdateProduct(context, p); err != nil {
		return err
	}
	repository.evict(context, p.ID)
	return nil
}

// DeleteProduct deletes through to the wrapped repository and evicts the cached entry.
func (repository *CachedRepository) DeleteProduct(context context.Context, id int64) error {
	if err := repository.Repository.DeleteProduct(context, id); err != nil {
		return err
	}
	repository.evict(context, id)
	return nil
}

func (repository *CachedRepository) evict(context context.Context, id int64) {
	if err := repository.client.Del(context, cacheKey(id)).Err(); err != nil {
		repository.logger.WarnContext(context, "product_cache_evict_failed",
			slog.Int64("product_id", id),
			slog.Any("error", err),
		)
	}
}
