package store

import (
	"context"
	"errors"
	"testing"
)

// seedOrder inserts a customer, a book and one order linking them.
func seedOrder(t *testing.T, s *Store, customer, title string, qty int64) (customerID, bookID, orderID int64) {
	t.Helper()
	ctx := context.Background()

	customerID, err := InsertCustomer(ctx, s.DB(), Customer{Name: customer})
	if err != nil {
		t.Fatalf("InsertCustomer() failed: %v", err)
	}
	bookID, err = InsertBook(ctx, s.DB(), Book{Title: title, Author: "x"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}
	orderID, err = InsertOrder(ctx, s.DB(), Order{CustomerID: customerID, BookID: bookID, Quantity: qty})
	if err != nil {
		t.Fatalf("InsertOrder() failed: %v", err)
	}
	return customerID, bookID, orderID
}

func TestInsertOrder_RequiresReferences(t *testing.T) {
	s := newTestStore(t)

	// No customer or book rows exist, so foreign keys must reject this.
	_, err := InsertOrder(context.Background(), s.DB(), Order{CustomerID: 1, BookID: 1, Quantity: 1})
	if err == nil {
		t.Error("expected foreign key violation, got nil")
	}
}

func TestListOrders_ResolvesNames(t *testing.T) {
	s := newTestStore(t)

	seedOrder(t, s, "Alice", "Dune", 2)

	orders, err := ListOrders(context.Background(), s.DB())
	if err != nil {
		t.Fatalf("ListOrders() failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("ListOrders() returned %d orders, expected 1", len(orders))
	}
	o := orders[0]
	if o.CustomerName != "Alice" || o.BookTitle != "Dune" || o.Quantity != 2 {
		t.Errorf("ListOrders()[0] = %+v, expected Alice/Dune/2", o)
	}
}

func TestListOrders_InsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	customerID, err := InsertCustomer(ctx, s.DB(), Customer{Name: "Alice"})
	if err != nil {
		t.Fatalf("InsertCustomer() failed: %v", err)
	}
	bookID, err := InsertBook(ctx, s.DB(), Book{Title: "Dune", Author: "x"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	for qty := int64(1); qty <= 3; qty++ {
		if _, err := InsertOrder(ctx, s.DB(), Order{CustomerID: customerID, BookID: bookID, Quantity: qty}); err != nil {
			t.Fatalf("InsertOrder() failed: %v", err)
		}
	}

	orders, err := ListOrders(ctx, s.DB())
	if err != nil {
		t.Fatalf("ListOrders() failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("ListOrders() returned %d orders, expected 3", len(orders))
	}
	for i, o := range orders {
		if o.Quantity != int64(i+1) {
			t.Errorf("orders[%d].Quantity = %d, expected %d", i, o.Quantity, i+1)
		}
	}
}

func TestCountOrdersForBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, bookID, _ := seedOrder(t, s, "Alice", "Dune", 1)

	n, err := CountOrdersForBook(ctx, s.DB(), bookID)
	if err != nil {
		t.Fatalf("CountOrdersForBook() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("CountOrdersForBook() = %d, expected 1", n)
	}

	n, err = CountOrdersForBook(ctx, s.DB(), bookID+1)
	if err != nil {
		t.Fatalf("CountOrdersForBook() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("CountOrdersForBook() for unknown book = %d, expected 0", n)
	}
}

func TestDeleteOrdersForBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, bookID, _ := seedOrder(t, s, "Alice", "Dune", 1)

	n, err := DeleteOrdersForBook(ctx, s.DB(), bookID)
	if err != nil {
		t.Fatalf("DeleteOrdersForBook() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("DeleteOrdersForBook() = %d, expected 1", n)
	}

	orders, err := ListOrders(ctx, s.DB())
	if err != nil {
		t.Fatalf("ListOrders() failed: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders after delete, found %d", len(orders))
	}
}

func TestInsertCustomer_DuplicateName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := InsertCustomer(ctx, s.DB(), Customer{Name: "Alice"}); err != nil {
		t.Fatalf("InsertCustomer() failed: %v", err)
	}

	_, err := InsertCustomer(ctx, s.DB(), Customer{Name: "Alice"})
	if err == nil {
		t.Fatal("expected unique violation, got nil")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation() = false for %v", err)
	}
}

func TestGetCustomerByName_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := GetCustomerByName(context.Background(), s.DB(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCustomerByName() error = %v, expected ErrNotFound", err)
	}
}
