package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleProduct builds a catalog record for cart tests.
func sampleProduct(id, barcode, name, price string, stock int) *Product {
	return &Product{
		ID:      id,
		Barcode: barcode,
		Name:    name,
		Price:   decimal.RequireFromString(price),
		Stock:   stock,
	}
}

func TestCartAddMerges(t *testing.T) {
	apple := sampleProduct("p1", "A1", "Apple", "9.99", 5)

	tests := []struct {
		name       string
		quantities []int
		wantQty    int
	}{
		{name: "single add", quantities: []int{3}, wantQty: 3},
		{name: "two adds accumulate", quantities: []int{1, 2}, wantQty: 3},
		{name: "three adds accumulate", quantities: []int{1, 1, 1}, wantQty: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			for _, q := range tt.quantities {
				_, err := c.Add(apple, q)
				require.NoError(t, err)
			}

			assert.Equal(t, 1, c.Len(), "same product must stay one line")
			item, ok := c.Item("p1")
			require.True(t, ok)
			assert.Equal(t, tt.wantQty, item.Quantity)
		})
	}
}

func TestCartAddRejectsBadQuantity(t *testing.T) {
	var c Cart
	apple := sampleProduct("p1", "A1", "Apple", "9.99", 5)

	for _, qty := range []int{0, -1, -100} {
		_, err := c.Add(apple, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 0, c.Len(), "rejected adds must not create lines")
}

func TestCartAddFreezesPriceAndName(t *testing.T) {
	var c Cart
	apple := sampleProduct("p1", "A1", "Apple", "9.99", 5)

	_, err := c.Add(apple, 1)
	require.NoError(t, err)

	// A catalog edit between scans must not reprice the existing line.
	apple.Price = decimal.RequireFromString("12.50")
	apple.Name = "Gala Apple"
	_, err = c.Add(apple, 1)
	require.NoError(t, err)

	item, ok := c.Item("p1")
	require.True(t, ok)
	assert.Equal(t, "Apple", item.Name)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("9.99")),
		"unit price frozen at first add, got %s", item.UnitPrice)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartRemove(t *testing.T) {
	var c Cart
	_, err := c.Add(sampleProduct("p1", "A1", "Apple", "1.00", 5), 1)
	require.NoError(t, err)
	_, err = c.Add(sampleProduct("p2", "B2", "Banana", "2.00", 5), 1)
	require.NoError(t, err)

	c.Remove("p1")
	assert.Equal(t, 1, c.Len())
	_, ok := c.Item("p1")
	assert.False(t, ok)

	// Removing an absent product is a no-op.
	c.Remove("p1")
	c.Remove("never-existed")
	assert.Equal(t, 1, c.Len())
}

func TestCartSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		qty       int
		wantErr   error
		wantQty   int
	}{
		{name: "replace quantity", productID: "p1", qty: 7, wantQty: 7},
		{name: "set to one", productID: "p1", qty: 1, wantQty: 1},
		{name: "zero rejected", productID: "p1", qty: 0, wantErr: ErrInvalidQuantity},
		{name: "negative rejected", productID: "p1", qty: -2, wantErr: ErrInvalidQuantity},
		{name: "absent product", productID: "ghost", qty: 2, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			_, err := c.Add(sampleProduct("p1", "A1", "Apple", "9.99", 5), 3)
			require.NoError(t, err)

			err = c.SetQuantity(tt.productID, tt.qty)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				item, ok := c.Item("p1")
				require.True(t, ok)
				assert.Equal(t, 3, item.Quantity, "failed set must not change the line")
				return
			}
			require.NoError(t, err)
			item, ok := c.Item("p1")
			require.True(t, ok)
			assert.Equal(t, tt.wantQty, item.Quantity)
		})
	}
}

func TestCartSubtotalExactRounding(t *testing.T) {
	// Three dimes must sum to exactly 0.30, with no float drift.
	var c Cart
	dime := sampleProduct("p1", "D1", "Dime candy", "0.10", 100)
	for i := 0; i < 3; i++ {
		_, err := c.Add(dime, 1)
		require.NoError(t, err)
	}

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("0.30")),
		"got %s", c.Subtotal())
}

func TestCartSubtotalAcrossLines(t *testing.T) {
	var c Cart
	_, err := c.Add(sampleProduct("p1", "A1", "Apple", "9.99", 5), 3)
	require.NoError(t, err)
	_, err = c.Add(sampleProduct("p2", "B2", "Banana", "0.45", 9), 2)
	require.NoError(t, err)

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("30.87")),
		"got %s", c.Subtotal())
}

func TestCartClear(t *testing.T) {
	var c Cart
	_, err := c.Add(sampleProduct("p1", "A1", "Apple", "9.99", 5), 3)
	require.NoError(t, err)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Subtotal().IsZero())
}

func TestCartItemsIsACopy(t *testing.T) {
	var c Cart
	_, err := c.Add(sampleProduct("p1", "A1", "Apple", "9.99", 5), 3)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	items[0].Quantity = 99

	item, ok := c.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity, "mutating the returned slice must not touch the cart")
}

func TestCartItemsInsertionOrder(t *testing.T) {
	var c Cart
	for _, p := range []*Product{
		sampleProduct("p3", "C3", "Cherry", "3.00", 5),
		sampleProduct("p1", "A1", "Apple", "1.00", 5),
		sampleProduct("p2", "B2", "Banana", "2.00", 5),
	} {
		_, err := c.Add(p, 1)
		require.NoError(t, err)
	}

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p3", items[0].ProductID)
	assert.Equal(t, "p1", items[1].ProductID)
	assert.Equal(t, "p2", items[2].ProductID)
}
