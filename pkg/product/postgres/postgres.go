// Package postgres implements a PostgreSQL-backed product repository.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"bugstore/pkg/product"
)

// Repository persists products in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, p product.Product) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO products (id,title,description,slug,price) VALUES ($1,$2,$3,$4,$5)",
		p.ID, p.Title, p.Description, p.Slug, p.Price)
	return err
}

// Get retrieves a product by ID.
func (r *Repository) Get(ctx context.Context, id string) (product.Product, error) {
	var p product.Product
	err := r.db.QueryRowContext(ctx,
		"SELECT id,title,description,slug,price FROM products WHERE id=$1", id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Slug, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return product.Product{}, product.ErrNotFound
	}
	return p, err
}

// List fetches all products.
func (r *Repository) List(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,title,description,slug,price FROM products")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByIDs fetches only the products matching the given ids.
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,title,description,slug,price FROM products WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]product.Product, error) {
	var products []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Slug, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update updates an existing product.
func (r *Repository) Update(ctx context.Context, p product.Product) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET title=$2, description=$3, slug=$4, price=$5 WHERE id=$1",
		p.ID, p.Title, p.Description, p.Slug, p.Price)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return product.ErrNotFound
	}
	return nil
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return product.ErrNotFound
	}
	return nil
}
