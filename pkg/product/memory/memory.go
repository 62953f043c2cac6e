// Package memory implements an in-memory product repository.
package memory

import (
	"context"
	"sync"

	"bugstore/pkg/product"
)

// Repository provides an in-memory implementation of product.Repository.
type Repository struct {
	mu       sync.RWMutex
	products map[string]product.Product
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{products: make(map[string]product.Product)}
}

// Create stores the product.
func (r *Repository) Create(ctx context.Context, p product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

// Get retrieves a product by ID.
func (r *Repository) Get(ctx context.Context, id string) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	return p, nil
}

// List returns all products.
func (r *Repository) List(ctx context.Context) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]product.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

// ListByIDs returns the products matching the given ids.
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update replaces an existing product.
func (r *Repository) Update(ctx context.Context, p product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return product.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.products, id)
	return nil
}
