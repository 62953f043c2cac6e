// Package postgres implements a PostgreSQL-backed order repository.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"bugstore/pkg/customer"
	"bugstore/pkg/order"
	"bugstore/pkg/product"
)

// Repository persists orders and their lines in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the order and its lines in a single transaction.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO orders (id,customer_id,created_at) VALUES ($1,$2,$3)",
		o.ID, o.CustomerID, o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, line := range o.Lines {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_lines (id,order_id,product_id,quantity,total) VALUES ($1,$2,$3,$4,$5)",
			line.ID, o.ID, line.ProductID, line.Quantity, line.Total); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return tx.Commit()
}

// Get retrieves an order by ID with its customer and line products attached.
// Related rows that no longer exist leave the corresponding field nil.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	var o order.Order
	var (
		custID    sql.NullString
		custName  sql.NullString
		custEmail sql.NullString
		custPhone sql.NullString
		custBirth sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.customer_id, o.created_at,
		       c.id, c.name, c.email, c.phone, c.birth_date
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`, id).
		Scan(&o.ID, &o.CustomerID, &o.CreatedAt,
			&custID, &custName, &custEmail, &custPhone, &custBirth)
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}
	if custID.Valid {
		o.Customer = &customer.Customer{
			ID:        custID.String,
			Name:      custName.String,
			Email:     custEmail.String,
			Phone:     custPhone.String,
			BirthDate: custBirth.Time,
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.product_id, l.quantity, l.total,
		       p.id, p.title, p.description, p.slug, p.price
		FROM order_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id = $1`, id)
	if err != nil {
		return order.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line order.Line
		var (
			prodID    sql.NullString
			prodTitle sql.NullString
			prodDesc  sql.NullString
			prodSlug  sql.NullString
			prodPrice decimal.NullDecimal
		)
		if err := rows.Scan(&line.ID, &line.ProductID, &line.Quantity, &line.Total,
			&prodID, &prodTitle, &prodDesc, &prodSlug, &prodPrice); err != nil {
			return order.Order{}, err
		}
		if prodID.Valid {
			line.Product = &product.Product{
				ID:          prodID.String,
				Title:       prodTitle.String,
				Description: prodDesc.String,
				Slug:        prodSlug.String,
				Price:       prodPrice.Decimal,
			}
		}
		o.Lines = append(o.Lines, line)
	}
	return o, rows.Err()
}
