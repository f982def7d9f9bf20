package store

import "database/sql"

// Book is a catalog entry. Stock is NULL when the book's inventory is
// untracked; a tracked book's stock never goes negative.
type Book struct {
	ID     int64
	Title  string
	Author string
	Genre  sql.NullString
	Price  int64
	Stock  sql.NullInt64
}

// Customer is a buyer record. Names are unique.
type Customer struct {
	ID          int64
	Name        string
	ContactInfo sql.NullString
}

// Order links one customer to one book with a positive quantity.
// Orders are immutable once created.
type Order struct {
	ID         int64
	CustomerID int64
	BookID     int64
	Quantity   int64
	CreatedAt  int64
}

// OrderView is an order resolved with its customer name and book title,
// as shown by listings.
type OrderView struct {
	Order
	CustomerName string
	BookTitle    string
}

// Activity is one entry of the append-only activity log.
type Activity struct {
	ID        string
	Op        string
	Detail    string
	Outcome   string
	CreatedAt int64
}
