package store

import (
	"context"
	"fmt"
)

// InsertOrder inserts a new order and returns its assigned id.
// The referenced customer and book must exist (foreign key constraints).
func InsertOrder(ctx context.Context, db DBTX, o Order) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO orders (customer_id, book_id, quantity)
		VALUES (?, ?, ?)
	`, o.CustomerID, o.BookID, o.Quantity)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert order: last insert id: %w", err)
	}
	return id, nil
}

// ListOrders returns all orders in insertion order, each resolved with its
// customer name and book title.
func ListOrders(ctx context.Context, db DBTX) ([]OrderView, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.book_id, o.quantity, o.created_at,
		       c.name, b.title
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		JOIN books b ON o.book_id = b.id
		ORDER BY o.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []OrderView
	for rows.Next() {
		var v OrderView
		err := rows.Scan(&v.ID, &v.CustomerID, &v.BookID, &v.Quantity, &v.CreatedAt,
			&v.CustomerName, &v.BookTitle)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// CountOrdersForBook returns how many orders reference the given book.
func CountOrdersForBook(ctx context.Context, db DBTX, bookID int64) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders WHERE book_id = ?
	`, bookID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders for book %d: %w", bookID, err)
	}
	return n, nil
}

// DeleteOrdersForBook removes all orders referencing the given book.
// Returns the number of orders deleted.
func DeleteOrdersForBook(ctx context.Context, db DBTX, bookID int64) (int64, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM orders WHERE book_id = ?`, bookID)
	if err != nil {
		return 0, fmt.Errorf("delete orders for book %d: %w", bookID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete orders for book %d: rows affected: %w", bookID, err)
	}
	return n, nil
}
