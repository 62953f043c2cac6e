// Package postgres implements a PostgreSQL-backed customer repository.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bugstore/pkg/customer"
)

// Repository persists customers in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new customer.
func (r *Repository) Create(ctx context.Context, c customer.Customer) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO customers (id,name,email,phone,birth_date) VALUES ($1,$2,$3,$4,$5)",
		c.ID, c.Name, c.Email, c.Phone, c.BirthDate)
	return err
}

// Get retrieves a customer by ID.
func (r *Repository) Get(ctx context.Context, id string) (customer.Customer, error) {
	var c customer.Customer
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,email,phone,birth_date FROM customers WHERE id=$1", id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BirthDate)
	if errors.Is(err, sql.ErrNoRows) {
		return customer.Customer{}, customer.ErrNotFound
	}
	return c, err
}

// List fetches all customers.
func (r *Repository) List(ctx context.Context) ([]customer.Customer, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name,email,phone,birth_date FROM customers")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var customers []customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BirthDate); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update updates an existing customer.
func (r *Repository) Update(ctx context.Context, c customer.Customer) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE customers SET name=$2, email=$3, phone=$4, birth_date=$5 WHERE id=$1",
		c.ID, c.Name, c.Email, c.Phone, c.BirthDate)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return customer.ErrNotFound
	}
	return nil
}

// Delete removes a customer by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return customer.ErrNotFound
	}
	return nil
}
