package ledger

import (
	"errors"
	"fmt"
)

// OutcomeError represents a reported outcome of a ledger operation.
//
// Outcomes are expected results of correct usage (a missing book id, an
// order exceeding stock), not infrastructure faults. Callers render them to
// the user and exit; no state change accompanies an OutcomeError.
type OutcomeError struct {
	// Code identifies the outcome category.
	Code OutcomeCode

	// Message is a human-readable description.
	Message string

	// BookID identifies the affected book (for NOT_FOUND, INSUFFICIENT_STOCK,
	// HAS_ORDERS).
	BookID int64

	// Title is the affected book's title (for INSUFFICIENT_STOCK, HAS_ORDERS).
	Title string

	// Orders is the number of referencing orders (for HAS_ORDERS).
	Orders int64
}

// OutcomeCode categorizes reported outcomes.
type OutcomeCode string

const (
	// CodeNotFound indicates a referenced book id does not exist.
	CodeNotFound OutcomeCode = "NOT_FOUND"

	// CodeInsufficientStock indicates an order exceeded a book's tracked stock.
	CodeInsufficientStock OutcomeCode = "INSUFFICIENT_STOCK"

	// CodeAlreadyExists indicates a duplicate customer name.
	CodeAlreadyExists OutcomeCode = "ALREADY_EXISTS"

	// CodeInvalidInput indicates a rejected argument (empty title, negative
	// price, non-positive quantity).
	CodeInvalidInput OutcomeCode = "INVALID_INPUT"

	// CodeHasOrders indicates a book deletion was refused because orders
	// still reference it.
	CodeHasOrders OutcomeCode = "HAS_ORDERS"
)

// Error implements the error interface.
func (e *OutcomeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsOutcome extracts an OutcomeError from err, or nil if err is not one.
func AsOutcome(err error) *OutcomeError {
	var oe *OutcomeError
	if errors.As(err, &oe) {
		return oe
	}
	return nil
}

func notFound(bookID int64) *OutcomeError {
	return &OutcomeError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("book with id %d does not exist", bookID),
		BookID:  bookID,
	}
}

func insufficientStock(bookID int64, title string) *OutcomeError {
	return &OutcomeError{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("not enough stock available for %q", title),
		BookID:  bookID,
		Title:   title,
	}
}

func invalidInput(format string, args ...any) *OutcomeError {
	return &OutcomeError{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf(format, args...),
	}
}
