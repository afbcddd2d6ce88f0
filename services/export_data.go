package services

// OrderRow is one cart line as it appears in the exported order
// documents: name, SKU, quantity, discounted unit price, line total.
type OrderRow struct {
	Name      string
	SKU       string
	Qty       float64
	UnitPrice float64
	Total     float64
}

// OrderExport holds everything the Excel/PDF generators and the
// WhatsApp summary need. It is a plain snapshot; building it from a
// cart is the whole of "submitting" an order.
type OrderExport struct {
	CustomerName string
	PONumber     string // "" when the customer gave none
	CreatedDate  string
	Rows         []OrderRow
	ItemCount    int
	GrandTotal   float64
}

// BuildOrderExport snapshots a cart for export.
func BuildOrderExport(cart *Cart, customerName, poNumber, createdDate string) OrderExport {
	lines := cart.Lines()
	rows := make([]OrderRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, OrderRow{
			Name:      l.Name,
			SKU:       l.SKU,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
		})
	}
	return OrderExport{
		CustomerName: customerName,
		PONumber:     poNumber,
		CreatedDate:  createdDate,
		Rows:         rows,
		ItemCount:    len(rows),
		GrandTotal:   cart.Total(),
	}
}

// PODisplay returns the PO number for display, "N/A" when absent.
func (e OrderExport) PODisplay() string {
	if e.PONumber == "" {
		return "N/A"
	}
	return e.PONumber
}
