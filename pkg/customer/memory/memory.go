// Package memory implements an in-memory customer repository.
package memory

import (
	"context"
	"sync"

	"bugstore/pkg/customer"
)

// Repository provides an in-memory implementation of customer.Repository.
type Repository struct {
	mu        sync.RWMutex
	customers map[string]customer.Customer
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{customers: make(map[string]customer.Customer)}
}

// Create stores the customer.
func (r *Repository) Create(ctx context.Context, c customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = c
	return nil
}

// Get retrieves a customer by ID.
func (r *Repository) Get(ctx context.Context, id string) (customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return customer.Customer{}, customer.ErrNotFound
	}
	return c, nil
}

// List returns all customers.
func (r *Repository) List(ctx context.Context) ([]customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]customer.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

// Update replaces an existing customer.
func (r *Repository) Update(ctx context.Context, c customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[c.ID]; !ok {
		return customer.ErrNotFound
	}
	r.customers[c.ID] = c
	return nil
}

// Delete removes a customer by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return customer.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}
