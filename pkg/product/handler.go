package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bugstore/pkg/response"
)

// CreateRequest carries the fields for adding a product to the catalog.
type CreateRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateRequest carries the mutable fields for an existing product.
// ID is taken from the request path, not the body.
type UpdateRequest struct {
	ID          string          `json:"-"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
}

// Handler implements product CRUD on top of a Repository.
type Handler struct {
	repo Repository
}

// NewHandler returns a Handler backed by repo.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Create adds a new product and returns the persisted entity.
func (h *Handler) Create(ctx context.Context, req CreateRequest) response.Response[Product] {
	p := Product{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		Price:       req.Price,
	}
	if err := h.repo.Create(ctx, p); err != nil {
		return response.Fail[Product](fmt.Sprintf("could not create product: %v", err))
	}
	return response.OK(p)
}

// Update overwrites the mutable fields of an existing product.
func (h *Handler) Update(ctx context.Context, req UpdateRequest) response.Response[Product] {
	p, err := h.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Fail[Product]("Product not found.")
		}
		return response.Fail[Product](fmt.Sprintf("could not update product: %v", err))
	}

	p.Title = req.Title
	p.Description = req.Description
	p.Slug = req.Slug
	p.Price = req.Price

	if err := h.repo.Update(ctx, p); err != nil {
		return response.Fail[Product](fmt.Sprintf("could not update product: %v", err))
	}
	return response.OK(p)
}

// Delete removes a product and returns a snapshot of the removed entity.
func (h *Handler) Delete(ctx context.Context, id string) response.Response[Product] {
	p, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Fail[Product]("Product not found.")
		}
		return response.Fail[Product](fmt.Sprintf("could not delete product: %v", err))
	}
	if err := h.repo.Delete(ctx, id); err != nil {
		return response.Fail[Product](fmt.Sprintf("could not delete product: %v", err))
	}
	return response.OK(p)
}

// List returns the full catalog.
func (h *Handler) List(ctx context.Context) response.Response[[]Product] {
	products, err := h.repo.List(ctx)
	if err != nil {
		return response.Fail[[]Product](fmt.Sprintf("could not list products: %v", err))
	}
	return response.OK(products)
}

// GetByID returns the product with the given id. A missing product is not
// a failure: the envelope comes back with neither payload nor message.
func (h *Handler) GetByID(ctx context.Context, id string) response.Response[Product] {
	p, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Empty[Product]()
		}
		return response.Fail[Product](fmt.Sprintf("could not fetch product: %v", err))
	}
	return response.OK(p)
}
