package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InsertBook inserts a new book and returns its assigned id.
func InsertBook(ctx context.Context, db DBTX, b Book) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO books (title, author, genre, price, stock)
		VALUES (?, ?, ?, ?, ?)
	`, b.Title, b.Author, b.Genre, b.Price, b.Stock)
	if err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert book: last insert id: %w", err)
	}
	return id, nil
}

// GetBook returns the book with the given id, or ErrNotFound.
func GetBook(ctx context.Context, db DBTX, id int64) (Book, error) {
	var b Book
	err := db.QueryRowContext(ctx, `
		SELECT id, title, author, genre, price, stock
		FROM books
		WHERE id = ?
	`, id).Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Price, &b.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}

// ListBooks returns all books ordered by title ascending.
// Ties are broken by id for deterministic output.
func ListBooks(ctx context.Context, db DBTX) ([]Book, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, author, genre, price, stock
		FROM books
		ORDER BY title ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.Price, &b.Stock); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// DecrementStock reduces a tracked book's stock by qty.
// Books with untracked (NULL) stock are left unchanged.
// The caller is responsible for checking sufficiency first; the schema's
// CHECK constraint is the last line of defense.
func DecrementStock(ctx context.Context, db DBTX, id, qty int64) error {
	_, err := db.ExecContext(ctx, `
		UPDATE books
		SET stock = stock - ?
		WHERE id = ? AND stock IS NOT NULL
	`, qty, id)
	if err != nil {
		return fmt.Errorf("decrement stock for book %d: %w", id, err)
	}
	return nil
}

// DeleteBook removes the book with the given id.
// Returns ErrNotFound if no such book exists.
func DeleteBook(ctx context.Context, db DBTX, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
