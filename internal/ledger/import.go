package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/askalski/bookstore/internal/store"
)

// catalogFile is the YAML shape accepted by ImportBooks:
//
//	books:
//	  - title: Dune
//	    author: Frank Herbert
//	    genre: SF
//	    price: 25
//	    stock: 3
//
// genre and stock are optional; a book without stock is untracked.
type catalogFile struct {
	Books []catalogBook `yaml:"books"`
}

type catalogBook struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Genre  string `yaml:"genre,omitempty"`
	Price  int64  `yaml:"price"`
	Stock  *int64 `yaml:"stock,omitempty"`
}

// ImportBooks loads a YAML catalog and inserts every book in one
// transaction. Any invalid entry aborts the whole import.
func (l *Ledger) ImportBooks(ctx context.Context, r io.Reader) ([]store.Book, error) {
	var catalog catalogFile
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(catalog.Books) == 0 {
		return nil, invalidInput("catalog contains no books")
	}

	// Validate everything up front so the transaction never starts for a
	// catalog that cannot fully load.
	books := make([]store.Book, 0, len(catalog.Books))
	for i, entry := range catalog.Books {
		title := normalizeText(entry.Title)
		author := normalizeText(entry.Author)
		genre := normalizeText(entry.Genre)

		if title == "" {
			return nil, invalidInput("catalog entry %d: book title must not be empty", i+1)
		}
		if author == "" {
			return nil, invalidInput("catalog entry %d: book author must not be empty", i+1)
		}
		if entry.Price < 0 {
			return nil, invalidInput("catalog entry %d: book price must not be negative", i+1)
		}
		if entry.Stock != nil && *entry.Stock < 0 {
			return nil, invalidInput("catalog entry %d: book stock must not be negative", i+1)
		}

		b := store.Book{Title: title, Author: author, Price: entry.Price}
		if genre != "" {
			b.Genre = sql.NullString{String: genre, Valid: true}
		}
		if entry.Stock != nil {
			b.Stock = sql.NullInt64{Int64: *entry.Stock, Valid: true}
		}
		books = append(books, b)
	}

	err := l.store.WithTx(ctx, func(tx *sql.Tx) error {
		for i := range books {
			id, err := store.InsertBook(ctx, tx, books[i])
			if err != nil {
				return err
			}
			books[i].ID = id
		}
		return l.logActivity(ctx, tx, "import", map[string]any{
			"count": len(books),
		}, "ok")
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}
