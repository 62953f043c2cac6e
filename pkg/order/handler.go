package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bugstore/pkg/product"
	"bugstore/pkg/response"
)

// CreateRequest carries the fields for placing an order.
type CreateRequest struct {
	CustomerID string              `json:"customerId"`
	Lines      []CreateLineRequest `json:"lines"`
}

// CreateLineRequest is one requested order line.
type CreateLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Handler places and retrieves orders. It prices lines against the product
// catalog at placement time.
type Handler struct {
	repo     Repository
	products product.Repository
}

// NewHandler returns a Handler backed by repo, resolving prices through
// products.
func NewHandler(repo Repository, products product.Repository) *Handler {
	return &Handler{repo: repo, products: products}
}

// Create places an order for the given customer. Each line's total is frozen
// at quantity × current product price. Lines referencing an unknown product
// id are kept with a zero total rather than rejected.
func (h *Handler) Create(ctx context.Context, req CreateRequest) response.Response[Order] {
	ids := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.ProductID)
	}
	products, err := h.products.ListByIDs(ctx, ids)
	if err != nil {
		return response.Fail[Order]("an error occurred while registering the order")
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	o := Order{
		ID:         uuid.NewString(),
		CustomerID: req.CustomerID,
		CreatedAt:  time.Now().UTC(),
		Lines:      make([]Line, 0, len(req.Lines)),
	}
	for _, line := range req.Lines {
		total := decimal.Zero
		if price, ok := prices[line.ProductID]; ok {
			total = price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		o.Lines = append(o.Lines, Line{
			ID:        uuid.NewString(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Total:     total,
		})
	}

	if err := h.repo.Create(ctx, o); err != nil {
		return response.Fail[Order]("an error occurred while registering the order")
	}
	return response.OK(o)
}

// GetByID retrieves an order with its customer and line products attached.
func (h *Handler) GetByID(ctx context.Context, id string) response.Response[Order] {
	o, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Fail[Order]("no order found.")
		}
		return response.Fail[Order]("an error occurred while fetching the order")
	}
	return response.OK(o)
}
