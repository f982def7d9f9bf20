package cli

import (
	"fmt"
	"strconv"

	"github.com/askalski/bookstore/internal/store"
)

// bookPayload is the JSON shape of a book. Stock is null when untracked.
type bookPayload struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre,omitempty"`
	Price  int64  `json:"price"`
	Stock  *int64 `json:"stock"`
}

func makeBookPayload(b store.Book) bookPayload {
	p := bookPayload{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  b.Price,
	}
	if b.Genre.Valid {
		p.Genre = b.Genre.String
	}
	if b.Stock.Valid {
		stock := b.Stock.Int64
		p.Stock = &stock
	}
	return p
}

// orderPayload is the JSON shape of a resolved order.
type orderPayload struct {
	ID       int64  `json:"id"`
	Customer string `json:"customer"`
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Quantity int64  `json:"quantity"`
}

func makeOrderPayload(v store.OrderView) orderPayload {
	return orderPayload{
		ID:       v.ID,
		Customer: v.CustomerName,
		BookID:   v.BookID,
		Title:    v.BookTitle,
		Quantity: v.Quantity,
	}
}

// bookLine renders one book the way list-books has always printed it.
func bookLine(b store.Book) string {
	genre := "-"
	if b.Genre.Valid {
		genre = b.Genre.String
	}
	stock := "untracked"
	if b.Stock.Valid {
		stock = strconv.FormatInt(b.Stock.Int64, 10)
	}
	return fmt.Sprintf("Title: %s, Author: %s, Genre: %s, Price: %d, Stock: %s",
		b.Title, b.Author, genre, b.Price, stock)
}

// orderLine renders one resolved order for list-orders.
func orderLine(v store.OrderView) string {
	return fmt.Sprintf("Order %d: %d x '%s' for %s", v.ID, v.Quantity, v.BookTitle, v.CustomerName)
}
