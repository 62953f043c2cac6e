package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bugstore/pkg/response"
)

// CreateRequest carries the fields for registering a new customer.
type CreateRequest struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birthDate"`
}

// UpdateRequest carries the mutable fields for an existing customer.
// ID is taken from the request path, not the body.
type UpdateRequest struct {
	ID        string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birthDate"`
}

// Handler implements customer CRUD on top of a Repository.
type Handler struct {
	repo Repository
}

// NewHandler returns a Handler backed by repo.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Create registers a new customer and returns the persisted entity.
func (h *Handler) Create(ctx context.Context, req CreateRequest) response.Response[Customer] {
	c := Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}
	if err := h.repo.Create(ctx, c); err != nil {
		return response.Fail[Customer](fmt.Sprintf("could not create customer: %v", err))
	}
	return response.OK(c)
}

// Update overwrites the mutable fields of an existing customer.
func (h *Handler) Update(ctx context.Context, req UpdateRequest) response.Response[Customer] {
	c, err := h.repo.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Fail[Customer]("Customer not found.")
		}
		return response.Fail[Customer](fmt.Sprintf("could not update customer: %v", err))
	}

	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.BirthDate = req.BirthDate

	if err := h.repo.Update(ctx, c); err != nil {
		return response.Fail[Customer](fmt.Sprintf("could not update customer: %v", err))
	}
	return response.OK(c)
}

// Delete removes a customer and returns a snapshot of the removed entity.
func (h *Handler) Delete(ctx context.Context, id string) response.Response[Customer] {
	c, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Fail[Customer]("Customer not found.")
		}
		return response.Fail[Customer](fmt.Sprintf("could not delete customer: %v", err))
	}
	if err := h.repo.Delete(ctx, id); err != nil {
		return response.Fail[Customer](fmt.Sprintf("could not delete customer: %v", err))
	}
	return response.OK(c)
}

// List returns all customers.
func (h *Handler) List(ctx context.Context) response.Response[[]Customer] {
	customers, err := h.repo.List(ctx)
	if err != nil {
		return response.Fail[[]Customer](fmt.Sprintf("could not list customers: %v", err))
	}
	return response.OK(customers)
}

// GetByID returns the customer with the given id. A missing customer is not
// a failure: the envelope comes back with neither payload nor message.
func (h *Handler) GetByID(ctx context.Context, id string) response.Response[Customer] {
	c, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Empty[Customer]()
		}
		return response.Fail[Customer](fmt.Sprintf("could not fetch customer: %v", err))
	}
	return response.OK(c)
}
