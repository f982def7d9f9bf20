package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteBook_Confirmed(t *testing.T) {
	db := testDB(t)
	seedBook(t, db, "Dune", "Frank Herbert", "SF", 25, 3)

	out, err := runCommandIn(t, db, "y\n", "delete-book", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete book 'Dune' (id 1)? [y/N]:")
	assert.Contains(t, out, "Book 'Dune' deleted.")

	out, err = runCommand(t, db, "list-books")
	require.NoError(t, err)
	assert.Contains(t, out, "No books available.")
}

func TestDeleteBook_Declined(t *testing.T) {
	db := testDB(t)
	seedBook(t, db, "Dune", "Frank Herbert", "SF", 25, 3)

	out, err := runCommandIn(t, db, "n\n", "delete-book", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	// Book remains retrievable unchanged
	out, err = runCommand(t, db, "list-books")
	require.NoError(t, err)
	assert.Contains(t, out, "Title: Dune")
}

func TestDeleteBook_Yes(t *testing.T) {
	db := testDB(t)
	seedBook(t, db, "Dune", "Frank Herbert", "SF", 25, 3)

	out, err := runCommand(t, db, "delete-book", "1", "--yes")
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, out, "Book 'Dune' deleted.")
}

func TestDeleteBook_NotFound(t *testing.T) {
	db := testDB(t)

	out, err := runCommand(t, db, "delete-book", "42", "--yes")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Book with ID 42 does not exist.")
}

func TestDeleteBook_InvalidID(t *testing.T) {
	db := testDB(t)

	_, err := runCommand(t, db, "delete-book", "not-a-number")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDeleteBook_RefusedWithOrders(t *testing.T) {
	db := testDB(t)
	seedBook(t, db, "Dune", "Frank Herbert", "SF", 25, 3)
	_, err := runCommand(t, db, "place-order", "--customer", "Alice", "--book-id", "1")
	require.NoError(t, err)

	out, err := runCommand(t, db, "delete-book", "1", "--yes")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Book 'Dune' has 1 orders; pass --force to delete them too.")

	// Still there
	out, err = runCommand(t, db, "list-books")
	require.NoError(t, err)
	assert.Contains(t, out, "Title: Dune")
}

func TestDeleteBook_Force(t *testing.T) {
	db := testDB(t)
	seedBook(t, db, "Dune", "Frank Herbert", "SF", 25, 3)
	_, err := runCommand(t, db, "place-order", "--customer", "Alice", "--book-id", "1")
	require.NoError(t, err)

	out, err := runCommand(t, db, "delete-book", "1", "--yes", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Book 'Dune' deleted.")

	out, err = runCommand(t, db, "list-orders")
	require.NoError(t, err)
	assert.Contains(t, out, "No orders found.")
}
