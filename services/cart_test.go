package services

import (
	"math"
	"testing"
)

func TestCartAdd_NewLine(t *testing.T) {
	c := NewCart()

	if !c.Add("NB-MS-M8-25", "MS Nut Bolt M8 x 25mm", 10, 2.50) {
		t.Fatal("Add() = false, want true")
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Qty != 10 {
		t.Errorf("qty = %v, want 10", lines[0].Qty)
	}
	if lines[0].Total != 25.0 {
		t.Errorf("total = %v, want 25.0", lines[0].Total)
	}
}

func TestCartAdd_MergesSameSKU(t *testing.T) {
	c := NewCart()

	c.Add("NB-MS-M8-25", "MS Nut Bolt M8 x 25mm", 10, 2.50)
	c.Add("NB-MS-M8-25", "MS Nut Bolt M8 x 25mm", 5, 2.50)

	if c.Len() != 1 {
		t.Fatalf("expected 1 line after merge, got %d", c.Len())
	}
	line := c.Lines()[0]
	if line.Qty != 15 {
		t.Errorf("merged qty = %v, want 15", line.Qty)
	}
	if line.Total != 37.50 {
		t.Errorf("merged total = %v, want 37.50", line.Total)
	}
}

func TestCartAdd_LatestPriceWins(t *testing.T) {
	c := NewCart()

	c.Add("BRG-6204", "Ball Bearing 6204", 2, 100)
	c.Add("BRG-6204", "Ball Bearing 6204", 3, 88)

	line := c.Lines()[0]
	if line.UnitPrice != 88 {
		t.Errorf("unit price = %v, want 88 (latest)", line.UnitPrice)
	}
	if line.Qty != 5 {
		t.Errorf("qty = %v, want 5", line.Qty)
	}
	if line.Total != 440 {
		t.Errorf("total = %v, want 440 (whole line repriced)", line.Total)
	}
}

func TestCartAdd_RejectsNonPositiveQty(t *testing.T) {
	c := NewCart()

	if c.Add("BRG-6204", "Ball Bearing 6204", 0, 100) {
		t.Error("Add() with qty 0 = true, want false")
	}
	if c.Add("BRG-6204", "Ball Bearing 6204", -5, 100) {
		t.Error("Add() with negative qty = true, want false")
	}
	if !c.Empty() {
		t.Error("cart should remain empty after rejected adds")
	}
}

func TestCartAdd_RejectsNonFiniteQty(t *testing.T) {
	c := NewCart()
	c.Add("BRG-6204", "Ball Bearing 6204", 2, 100)

	for _, qty := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if c.Add("BRG-6204", "Ball Bearing 6204", qty, 100) {
			t.Errorf("Add() with qty %v = true, want false", qty)
		}
	}

	line := c.Lines()[0]
	if line.Qty != 2 {
		t.Errorf("qty = %v, want 2 after rejected adds", line.Qty)
	}
	if math.IsNaN(c.Total()) || math.IsInf(c.Total(), 0) {
		t.Errorf("Total() = %v, want finite", c.Total())
	}
}

func TestCartAdd_FractionalQty(t *testing.T) {
	c := NewCart()

	c.Add("NB-GI-8G", "GI Nut Bolt 8G", 2.5, 1.8)

	line := c.Lines()[0]
	if line.Qty != 2.5 {
		t.Errorf("qty = %v, want 2.5", line.Qty)
	}
	if line.Total != 4.5 {
		t.Errorf("total = %v, want 4.5", line.Total)
	}
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	c.Add("BRG-6204", "Ball Bearing 6204", 2, 100)
	c.Add("VB-A-32", "V-Belt A-32", 1, 85)

	c.Clear()
	if !c.Empty() {
		t.Error("cart not empty after Clear")
	}
	if c.Total() != 0 {
		t.Errorf("total = %v after Clear, want 0", c.Total())
	}

	// Clearing an already empty cart is a no-op
	c.Clear()
	if !c.Empty() {
		t.Error("cart not empty after second Clear")
	}
}

func TestCartTotal(t *testing.T) {
	c := NewCart()
	c.Add("BRG-6204", "Ball Bearing 6204", 2, 100)
	c.Add("VB-A-32", "V-Belt A-32", 1, 85)

	if c.Total() != 285 {
		t.Errorf("total = %v, want 285", c.Total())
	}
}

func TestCartLines_ReturnsCopy(t *testing.T) {
	c := NewCart()
	c.Add("BRG-6204", "Ball Bearing 6204", 2, 100)

	lines := c.Lines()
	lines[0].Qty = 999

	if got := c.Lines()[0].Qty; got != 2 {
		t.Errorf("mutating the returned slice changed the cart: qty = %v, want 2", got)
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	c := NewCart()
	c.Add("VB-A-32", "V-Belt A-32", 1, 85)
	c.Add("BRG-6204", "Ball Bearing 6204", 1, 100)
	c.Add("VB-A-32", "V-Belt A-32", 1, 85)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].SKU != "VB-A-32" || lines[1].SKU != "BRG-6204" {
		t.Errorf("lines out of order: %q, %q", lines[0].SKU, lines[1].SKU)
	}
}
