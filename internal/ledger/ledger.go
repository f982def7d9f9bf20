package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/askalski/bookstore/internal/store"
)

// Ledger mediates all mutations to book, customer and order records and
// enforces the stock-sufficiency invariant: an order is only placed when a
// tracked book has at least the ordered quantity in stock, and the order
// insert and stock decrement commit together.
//
// Each mutating operation is a single read-check-write transaction against
// the injected store; there is no ambient global handle.
type Ledger struct {
	store *store.Store
	ids   IDGenerator
}

// New creates a Ledger over the given store.
// A nil ids generator defaults to UUIDv7.
func New(st *store.Store, ids IDGenerator) *Ledger {
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	return &Ledger{store: st, ids: ids}
}

// AddBookInput holds the arguments for AddBook.
// A nil Stock means the book's inventory is untracked.
type AddBookInput struct {
	Title  string
	Author string
	Genre  string
	Price  int64
	Stock  *int64
}

// AddBook validates and persists a new book, returning it with its
// assigned id.
func (l *Ledger) AddBook(ctx context.Context, in AddBookInput) (store.Book, error) {
	in.Title = normalizeText(in.Title)
	in.Author = normalizeText(in.Author)
	in.Genre = normalizeText(in.Genre)

	if in.Title == "" {
		return store.Book{}, invalidInput("book title must not be empty")
	}
	if in.Author == "" {
		return store.Book{}, invalidInput("book author must not be empty")
	}
	if in.Price < 0 {
		return store.Book{}, invalidInput("book price must not be negative")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return store.Book{}, invalidInput("book stock must not be negative")
	}

	b := store.Book{
		Title:  in.Title,
		Author: in.Author,
		Price:  in.Price,
	}
	if in.Genre != "" {
		b.Genre = sql.NullString{String: in.Genre, Valid: true}
	}
	if in.Stock != nil {
		b.Stock = sql.NullInt64{Int64: *in.Stock, Valid: true}
	}

	err := l.store.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := store.InsertBook(ctx, tx, b)
		if err != nil {
			return err
		}
		b.ID = id
		return l.logActivity(ctx, tx, "add-book", map[string]any{
			"book_id": id,
			"title":   b.Title,
		}, "ok")
	})
	if err != nil {
		return store.Book{}, err
	}

	slog.Debug("book added", "id", b.ID, "title", b.Title)
	return b, nil
}

// AddCustomer validates and persists a new customer.
// Duplicate names report an ALREADY_EXISTS outcome.
func (l *Ledger) AddCustomer(ctx context.Context, name, contactInfo string) (store.Customer, error) {
	name = normalizeText(name)
	contactInfo = normalizeText(contactInfo)

	if name == "" {
		return store.Customer{}, invalidInput("customer name must not be empty")
	}

	c := store.Customer{Name: name}
	if contactInfo != "" {
		c.ContactInfo = sql.NullString{String: contactInfo, Valid: true}
	}

	err := l.store.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := store.InsertCustomer(ctx, tx, c)
		if err != nil {
			return err
		}
		c.ID = id
		return l.logActivity(ctx, tx, "add-customer", map[string]any{
			"customer_id": id,
			"name":        c.Name,
		}, "ok")
	})
	if store.IsUniqueViolation(err) {
		oe := &OutcomeError{
			Code:    CodeAlreadyExists,
			Message: fmt.Sprintf("customer %q already exists", name),
		}
		l.recordOutcome(ctx, "add-customer", map[string]any{"name": name}, oe)
		return store.Customer{}, oe
	}
	if err != nil {
		return store.Customer{}, err
	}

	slog.Debug("customer added", "id", c.ID, "name", c.Name)
	return c, nil
}

// Lookup returns the book with the given id, reporting a NOT_FOUND outcome
// when no such book exists.
func (l *Ledger) Lookup(ctx context.Context, bookID int64) (store.Book, error) {
	book, err := store.GetBook(ctx, l.store.DB(), bookID)
	if errors.Is(err, store.ErrNotFound) {
		return store.Book{}, notFound(bookID)
	}
	return book, err
}

// Books returns all books ordered by title ascending.
func (l *Ledger) Books(ctx context.Context) ([]store.Book, error) {
	return store.ListBooks(ctx, l.store.DB())
}

// Orders returns all orders in insertion order, resolved with customer
// names and book titles.
func (l *Ledger) Orders(ctx context.Context) ([]store.OrderView, error) {
	return store.ListOrders(ctx, l.store.DB())
}

// PlaceOrder places an order for quantity copies of the given book on
// behalf of the named customer.
//
// The whole sequence runs in one transaction: the customer is looked up by
// exact name (created if absent), the book is fetched, tracked stock is
// checked against the quantity, and the order insert plus stock decrement
// commit together. A failed order therefore leaves no new customer behind.
func (l *Ledger) PlaceOrder(ctx context.Context, customerName string, bookID, quantity int64) (store.OrderView, error) {
	customerName = normalizeText(customerName)
	if customerName == "" {
		return store.OrderView{}, invalidInput("customer name must not be empty")
	}
	if quantity <= 0 {
		return store.OrderView{}, invalidInput("order quantity must be positive")
	}

	var view store.OrderView
	err := l.store.WithTx(ctx, func(tx *sql.Tx) error {
		customer, err := store.GetCustomerByName(ctx, tx, customerName)
		if errors.Is(err, store.ErrNotFound) {
			customer = store.Customer{Name: customerName}
			customer.ID, err = store.InsertCustomer(ctx, tx, customer)
		}
		if err != nil {
			return err
		}

		book, err := store.GetBook(ctx, tx, bookID)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(bookID)
		}
		if err != nil {
			return err
		}

		if book.Stock.Valid && book.Stock.Int64 < quantity {
			return insufficientStock(book.ID, book.Title)
		}

		order := store.Order{
			CustomerID: customer.ID,
			BookID:     book.ID,
			Quantity:   quantity,
		}
		order.ID, err = store.InsertOrder(ctx, tx, order)
		if err != nil {
			return err
		}
		if err := store.DecrementStock(ctx, tx, book.ID, quantity); err != nil {
			return err
		}

		view = store.OrderView{
			Order:        order,
			CustomerName: customer.Name,
			BookTitle:    book.Title,
		}
		return l.logActivity(ctx, tx, "place-order", map[string]any{
			"order_id": order.ID,
			"book_id":  book.ID,
			"customer": customer.Name,
			"quantity": quantity,
		}, "ok")
	})
	if err != nil {
		if oe := AsOutcome(err); oe != nil {
			l.recordOutcome(ctx, "place-order", map[string]any{
				"book_id":  bookID,
				"customer": customerName,
				"quantity": quantity,
			}, oe)
		}
		return store.OrderView{}, err
	}

	slog.Debug("order placed",
		"id", view.ID, "book", view.BookTitle,
		"customer", view.CustomerName, "quantity", quantity)
	return view, nil
}

// DeleteBook removes the book with the given id and returns the deleted
// record.
//
// A book that existing orders still reference is refused with a HAS_ORDERS
// outcome unless force is set, in which case the referencing orders are
// deleted in the same transaction so no dangling references remain.
func (l *Ledger) DeleteBook(ctx context.Context, bookID int64, force bool) (store.Book, error) {
	var book store.Book
	err := l.store.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		book, err = store.GetBook(ctx, tx, bookID)
		if errors.Is(err, store.ErrNotFound) {
			return notFound(bookID)
		}
		if err != nil {
			return err
		}

		n, err := store.CountOrdersForBook(ctx, tx, bookID)
		if err != nil {
			return err
		}
		if n > 0 && !force {
			return &OutcomeError{
				Code:    CodeHasOrders,
				Message: fmt.Sprintf("book %q has %d orders", book.Title, n),
				BookID:  bookID,
				Title:   book.Title,
				Orders:  n,
			}
		}
		if n > 0 {
			if _, err := store.DeleteOrdersForBook(ctx, tx, bookID); err != nil {
				return err
			}
		}

		if err := store.DeleteBook(ctx, tx, bookID); err != nil {
			return err
		}
		return l.logActivity(ctx, tx, "delete-book", map[string]any{
			"book_id":        bookID,
			"title":          book.Title,
			"orders_deleted": n,
		}, "ok")
	})
	if err != nil {
		if oe := AsOutcome(err); oe != nil {
			l.recordOutcome(ctx, "delete-book", map[string]any{"book_id": bookID}, oe)
		}
		return store.Book{}, err
	}

	slog.Debug("book deleted", "id", bookID, "title", book.Title)
	return book, nil
}

// History returns the most recent activity log entries, newest first.
func (l *Ledger) History(ctx context.Context, limit int64) ([]store.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	return store.ListActivity(ctx, l.store.DB(), limit)
}

// logActivity appends an activity row inside the operation's transaction.
func (l *Ledger) logActivity(ctx context.Context, tx *sql.Tx, op string, detail map[string]any, outcome string) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshal activity detail: %w", err)
	}
	return store.AppendActivity(ctx, tx, store.Activity{
		ID:      l.ids.Generate(),
		Op:      op,
		Detail:  string(raw),
		Outcome: outcome,
	})
}

// recordOutcome appends an activity row for a reported failure outcome.
// The failed operation committed nothing, so this writes standalone.
// Best-effort: a logging failure must not mask the outcome itself.
func (l *Ledger) recordOutcome(ctx context.Context, op string, detail map[string]any, oe *OutcomeError) {
	raw, err := json.Marshal(detail)
	if err != nil {
		slog.Warn("failed to marshal activity detail", "op", op, "error", err)
		return
	}
	a := store.Activity{
		ID:      l.ids.Generate(),
		Op:      op,
		Detail:  string(raw),
		Outcome: string(oe.Code),
	}
	if err := store.AppendActivity(ctx, l.store.DB(), a); err != nil {
		slog.Warn("failed to record activity", "op", op, "error", err)
	}
}
