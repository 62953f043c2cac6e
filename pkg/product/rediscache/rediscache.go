// Package rediscache decorates a product repository with a redis
// read-through cache for catalog reads.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"bugstore/pkg/product"
)

const listKey = "products:all"

// Repository wraps an inner product.Repository, serving Get and List from
// redis when possible. Writes invalidate the affected keys. ListByIDs always
// hits the inner repository so order pricing reads the current price.
type Repository struct {
	inner  product.Repository
	client *redis.Client
	ttl    time.Duration
}

// New creates a caching repository around inner.
func New(inner product.Repository, client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{inner: inner, client: client, ttl: ttl}
}

func key(id string) string {
	return "products:" + id
}

// Create inserts via the inner repository and drops the catalog listing.
func (r *Repository) Create(ctx context.Context, p product.Product) error {
	if err := r.inner.Create(ctx, p); err != nil {
		return err
	}
	r.client.Del(ctx, listKey)
	return nil
}

// Get returns the cached product if present, loading and caching it otherwise.
func (r *Repository) Get(ctx context.Context, id string) (product.Product, error) {
	raw, err := r.client.Get(ctx, key(id)).Result()
	if err == nil {
		var p product.Product
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			return p, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Cache unavailable; fall through to the inner repository.
		return r.inner.Get(ctx, id)
	}

	p, err := r.inner.Get(ctx, id)
	if err != nil {
		return product.Product{}, err
	}
	if data, err := json.Marshal(p); err == nil {
		r.client.Set(ctx, key(id), data, r.ttl)
	}
	return p, nil
}

// List returns the cached catalog if present, loading and caching it otherwise.
func (r *Repository) List(ctx context.Context) ([]product.Product, error) {
	raw, err := r.client.Get(ctx, listKey).Result()
	if err == nil {
		var products []product.Product
		if err := json.Unmarshal([]byte(raw), &products); err == nil {
			return products, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return r.inner.List(ctx)
	}

	products, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(products); err == nil {
		r.client.Set(ctx, listKey, data, r.ttl)
	}
	return products, nil
}

// ListByIDs delegates to the inner repository.
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	return r.inner.ListByIDs(ctx, ids)
}

// Update updates via the inner repository and invalidates the product.
func (r *Repository) Update(ctx context.Context, p product.Product) error {
	if err := r.inner.Update(ctx, p); err != nil {
		return err
	}
	r.client.Del(ctx, key(p.ID), listKey)
	return nil
}

// Delete removes via the inner repository and invalidates the product.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.client.Del(ctx, key(id), listKey)
	return nil
}
