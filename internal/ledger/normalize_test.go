package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Dune", normalizeText("  Dune \n"))
	assert.Equal(t, "", normalizeText("   "))

	// Decomposed e + combining acute must collapse to the precomposed form.
	assert.Equal(t, "Café", normalizeText("Café"))
}

func TestNormalization_UnifiesCustomerLookup(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	book := addDune(t, l, 5)

	// Same customer name, once precomposed and once decomposed.
	_, err := l.PlaceOrder(ctx, "Café", book.ID, 1)
	require.NoError(t, err)
	_, err = l.PlaceOrder(ctx, "Café", book.ID, 1)
	require.NoError(t, err)

	orders, err := l.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, orders[0].CustomerID, orders[1].CustomerID,
		"both spellings should resolve to one customer")
}
