// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"errors"
	"sync"

	"bugstore/pkg/customer"
	"bugstore/pkg/order"
	"bugstore/pkg/product"
)

// Repository provides an in-memory implementation of order.Repository.
// Eager loading on Get resolves related entities through the customer and
// product repositories it was constructed with.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]order.Order

	customers customer.Repository
	products  product.Repository
}

// New creates a new in-memory repository.
func New(customers customer.Repository, products product.Repository) *Repository {
	return &Repository{
		orders:    make(map[string]order.Order),
		customers: customers,
		products:  products,
	}
}

// Create stores the order with its lines.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

// Get retrieves an order by ID with customer and line products attached.
// Related entities that no longer exist are left nil, matching the
// left-join behavior of the SQL repository.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	o, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return order.Order{}, order.ErrNotFound
	}

	if c, err := r.customers.Get(ctx, o.CustomerID); err == nil {
		o.Customer = &c
	} else if !errors.Is(err, customer.ErrNotFound) {
		return order.Order{}, err
	}

	lines := make([]order.Line, len(o.Lines))
	copy(lines, o.Lines)
	for i, line := range lines {
		p, err := r.products.Get(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				continue
			}
			return order.Order{}, err
		}
		lines[i].Product = &p
	}
	o.Lines = lines

	return o, nil
}
