package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"bugstore/pkg/customer"
	"bugstore/pkg/product"
)

// Order represents a placed customer order. Orders are immutable once
// created; there is no update or delete.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
	Lines      []Line    `json:"lines"`

	// Customer is populated on eager-loaded reads only.
	Customer *customer.Customer `json:"customer,omitempty"`
}

// Line is a single order line. Total is a snapshot of quantity × product
// price taken at placement time; it never tracks later price changes.
type Line struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`

	// Product is populated on eager-loaded reads only.
	Product *product.Product `json:"product,omitempty"`
}

// Repository defines behavior for persisting orders.
type Repository interface {
	// Create persists the order together with its lines.
	Create(ctx context.Context, o Order) error
	// Get retrieves an order by ID with its customer and each line's
	// product attached.
	Get(ctx context.Context, id string) (Order, error)
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")
