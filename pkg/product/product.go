package product

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Product represents an item offered in the catalog.
type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
}

// Repository defines behavior for persisting products.
type Repository interface {
	Create(ctx context.Context, p Product) error
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	// ListByIDs returns the products matching the given ids. Unknown ids are
	// simply absent from the result, not an error.
	ListByIDs(ctx context.Context, ids []string) ([]Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
}

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")
