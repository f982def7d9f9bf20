package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InsertCustomer inserts a new customer and returns its assigned id.
// A duplicate name fails the UNIQUE constraint; use IsUniqueViolation
// to detect that case.
func InsertCustomer(ctx context.Context, db DBTX, c Customer) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO customers (name, contact_info)
		VALUES (?, ?)
	`, c.Name, c.ContactInfo)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert customer: last insert id: %w", err)
	}
	return id, nil
}

// GetCustomerByName returns the customer with the given exact name,
// or ErrNotFound.
func GetCustomerByName(ctx context.Context, db DBTX, name string) (Customer, error) {
	var c Customer
	err := db.QueryRowContext(ctx, `
		SELECT id, name, contact_info
		FROM customers
		WHERE name = ?
	`, name).Scan(&c.ID, &c.Name, &c.ContactInfo)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, fmt.Errorf("get customer %q: %w", name, err)
	}
	return c, nil
}
