package services

import "math"

// CartLine is one SKU's position in the cart. Qty may be fractional for
// weight-sold items.
type CartLine struct {
	SKU       string
	Name      string
	Qty       float64
	UnitPrice float64
	Total     float64
}

// Cart is an ordered, SKU-unique collection of line items. It is scoped
// to a single login session and never persisted.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts qty units of a SKU into the cart. Adding a SKU already in the
// cart accumulates the quantity and overwrites the unit price with the
// latest one passed (repeat adds at a changed price re-price the whole
// line rather than splitting it). Non-positive and non-finite quantities
// are rejected and leave the cart untouched; Add reports whether the
// cart changed.
func (c *Cart) Add(sku, name string, qty, unitPrice float64) bool {
	if qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return false
	}
	for i := range c.lines {
		if c.lines[i].SKU == sku {
			c.lines[i].Qty += qty
			c.lines[i].UnitPrice = unitPrice
			c.lines[i].Total = LineTotal(c.lines[i].Qty, unitPrice)
			return true
		}
	}
	c.lines = append(c.lines, CartLine{
		SKU:       sku,
		Name:      name,
		Qty:       qty,
		UnitPrice: unitPrice,
		Total:     LineTotal(qty, unitPrice),
	})
	return true
}

// Clear empties the cart. The only removal operation the portal offers.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct SKUs in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Total is the sum of all line totals.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Total
	}
	return sum
}
