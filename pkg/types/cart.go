package types

import "github.com/shopspring/decimal"

// CartItem is one pending line in a cart. Name and UnitPrice are frozen
// copies taken from the catalog when the line is first created; later
// catalog edits do not reprice a line already in the cart.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Barcode   string          `json:"barcode"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns UnitPrice multiplied by Quantity, unrounded.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart is the mutable working set for one in-progress transaction. It is
// owned by a single caller and holds at most one line per product; adding
// a product again accumulates onto the existing line. The zero value is
// an empty, usable cart. Cart has no stock awareness and is not safe for
// concurrent use.
type Cart struct {
	items []CartItem
}

// Add merges qty units of the product into the cart. A product already
// present gets its quantity increased on the existing line; otherwise a
// new line is appended with the product's current name and price frozen
// in. Returns the resulting line, or ErrInvalidQuantity if qty < 1.
func (c *Cart) Add(p *Product, qty int) (CartItem, error) {
	if qty < 1 {
		return CartItem{}, ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += qty
			return c.items[i], nil
		}
	}
	item := CartItem{
		ProductID: p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	}
	c.items = append(c.items, item)
	return item, nil
}

// Remove deletes the line for productID if present. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity on an existing line.
// Returns ErrInvalidQuantity if qty < 1; quantities are never silently
// zeroed, removal goes through Remove. Returns ErrNotFound if the
// product has no line.
func (c *Cart) SetQuantity(productID string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return nil
		}
	}
	return ErrNotFound
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.items = nil
}

// Subtotal sums quantity times unit price across all lines, rounded to
// two decimal places at the end rather than per line.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for i := range c.items {
		sum = sum.Add(c.items[i].LineTotal())
	}
	return sum.Round(2)
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns a copy of the line for productID and whether it exists.
func (c *Cart) Item(productID string) (CartItem, bool) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return c.items[i], true
		}
	}
	return CartItem{}, false
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}
