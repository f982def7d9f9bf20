package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestInsertBook_AssignsIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, err := InsertBook(ctx, s.DB(), Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}
	id2, err := InsertBook(ctx, s.DB(), Book{Title: "Emma", Author: "Austen"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	if id1 == id2 {
		t.Errorf("expected distinct ids, got %d twice", id1)
	}
}

func TestGetBook_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := Book{
		Title:  "Dune",
		Author: "Herbert",
		Genre:  sql.NullString{String: "SF", Valid: true},
		Price:  25,
		Stock:  sql.NullInt64{Int64: 3, Valid: true},
	}
	id, err := InsertBook(ctx, s.DB(), in)
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	got, err := GetBook(ctx, s.DB(), id)
	if err != nil {
		t.Fatalf("GetBook() failed: %v", err)
	}
	if got.Title != in.Title || got.Author != in.Author {
		t.Errorf("GetBook() = %+v, expected title/author from %+v", got, in)
	}
	if got.Genre != in.Genre || got.Price != in.Price || got.Stock != in.Stock {
		t.Errorf("GetBook() = %+v, expected genre/price/stock from %+v", got, in)
	}
}

func TestGetBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := GetBook(context.Background(), s.DB(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBook() error = %v, expected ErrNotFound", err)
	}
}

func TestGetBook_UntrackedStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := InsertBook(ctx, s.DB(), Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	got, err := GetBook(ctx, s.DB(), id)
	if err != nil {
		t.Fatalf("GetBook() failed: %v", err)
	}
	if got.Stock.Valid {
		t.Errorf("expected untracked stock to scan as invalid, got %+v", got.Stock)
	}
}

func TestListBooks_SortedByTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	titles := []string{"Middlemarch", "Dune", "Solaris"}
	for _, title := range titles {
		if _, err := InsertBook(ctx, s.DB(), Book{Title: title, Author: "x"}); err != nil {
			t.Fatalf("InsertBook(%q) failed: %v", title, err)
		}
	}

	books, err := ListBooks(ctx, s.DB())
	if err != nil {
		t.Fatalf("ListBooks() failed: %v", err)
	}

	want := []string{"Dune", "Middlemarch", "Solaris"}
	if len(books) != len(want) {
		t.Fatalf("ListBooks() returned %d books, expected %d", len(books), len(want))
	}
	for i, title := range want {
		if books[i].Title != title {
			t.Errorf("books[%d].Title = %q, expected %q", i, books[i].Title, title)
		}
	}
}

func TestDecrementStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := InsertBook(ctx, s.DB(), Book{
		Title: "Dune", Author: "Herbert",
		Stock: sql.NullInt64{Int64: 3, Valid: true},
	})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	if err := DecrementStock(ctx, s.DB(), id, 2); err != nil {
		t.Fatalf("DecrementStock() failed: %v", err)
	}

	got, err := GetBook(ctx, s.DB(), id)
	if err != nil {
		t.Fatalf("GetBook() failed: %v", err)
	}
	if !got.Stock.Valid || got.Stock.Int64 != 1 {
		t.Errorf("stock = %+v, expected 1", got.Stock)
	}
}

func TestDecrementStock_UntrackedIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := InsertBook(ctx, s.DB(), Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	if err := DecrementStock(ctx, s.DB(), id, 5); err != nil {
		t.Fatalf("DecrementStock() failed: %v", err)
	}

	got, err := GetBook(ctx, s.DB(), id)
	if err != nil {
		t.Fatalf("GetBook() failed: %v", err)
	}
	if got.Stock.Valid {
		t.Errorf("stock = %+v, expected to stay untracked", got.Stock)
	}
}

func TestDeleteBook(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := InsertBook(ctx, s.DB(), Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("InsertBook() failed: %v", err)
	}

	if err := DeleteBook(ctx, s.DB(), id); err != nil {
		t.Fatalf("DeleteBook() failed: %v", err)
	}

	if _, err := GetBook(ctx, s.DB(), id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBook() after delete error = %v, expected ErrNotFound", err)
	}
}

func TestDeleteBook_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := DeleteBook(context.Background(), s.DB(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteBook() error = %v, expected ErrNotFound", err)
	}
}
