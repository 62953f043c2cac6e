package customer

import (
	"context"
	"errors"
	"time"
)

// Customer represents a registered store customer.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birthDate"`
}

// Repository defines behavior for persisting customers.
type Repository interface {
	Create(ctx context.Context, c Customer) error
	Get(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, c Customer) error
	Delete(ctx context.Context, id string) error
}

// ErrNotFound indicates the requested customer does not exist.
var ErrNotFound = errors.New("customer not found")
