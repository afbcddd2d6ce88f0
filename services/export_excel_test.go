package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleExport() OrderExport {
	return OrderExport{
		CustomerName: "Sharma Hardware",
		PONumber:     "PO-7781",
		CreatedDate:  "31 Aug 2026",
		Rows: []OrderRow{
			{Name: "Ball Bearing 6204", SKU: "BRG-6204", Qty: 2, UnitPrice: 95, Total: 190},
			{Name: "MS Nut Bolt M8 x 25mm", SKU: "NB-MS-M8-25", Qty: 10, UnitPrice: 2.375, Total: 23.75},
		},
		ItemCount:  2,
		GrandTotal: 213.75,
	}
}

func TestGenerateOrderExcel(t *testing.T) {
	result, err := GenerateOrderExcel(sampleExport())
	if err != nil {
		t.Fatalf("GenerateOrderExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOrderExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Order" {
		t.Errorf("expected sheet name 'Order', got %v", sheets)
	}

	title, _ := f.GetCellValue("Order", "A1")
	if title != "Order Enquiry - Sharma Hardware" {
		t.Errorf("title = %q", title)
	}
	po, _ := f.GetCellValue("Order", "A2")
	if po != "PO Number: PO-7781" {
		t.Errorf("PO line = %q", po)
	}

	// Header row.
	header, _ := f.GetCellValue("Order", "A5")
	if header != "Name" {
		t.Errorf("A5 = %q, want 'Name'", header)
	}

	// First data row.
	name, _ := f.GetCellValue("Order", "A6")
	sku, _ := f.GetCellValue("Order", "B6")
	price, _ := f.GetCellValue("Order", "D6")
	if name != "Ball Bearing 6204" {
		t.Errorf("A6 = %q", name)
	}
	if sku != "BRG-6204" {
		t.Errorf("B6 = %q", sku)
	}
	if price != "₹95.00" {
		t.Errorf("D6 = %q, want ₹95.00", price)
	}

	// Grand-total footer sits one blank row after the data.
	total, _ := f.GetCellValue("Order", "E9")
	if total != "₹213.75" {
		t.Errorf("E9 = %q, want ₹213.75", total)
	}
}

func TestGenerateOrderExcel_NoPONumber(t *testing.T) {
	data := sampleExport()
	data.PONumber = ""

	result, err := GenerateOrderExcel(data)
	if err != nil {
		t.Fatalf("GenerateOrderExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	po, _ := f.GetCellValue("Order", "A2")
	if po != "PO Number: N/A" {
		t.Errorf("A2 = %q, want 'PO Number: N/A'", po)
	}
}

func TestGenerateOrderExcel_SanitizesNames(t *testing.T) {
	data := OrderExport{
		CustomerName: "Sharma Hardware",
		CreatedDate:  "31 Aug 2026",
		Rows: []OrderRow{
			{Name: "=HYPERLINK(\"evil\")", SKU: "X-1", Qty: 1, UnitPrice: 1, Total: 1},
		},
		ItemCount:  1,
		GrandTotal: 1,
	}

	result, err := GenerateOrderExcel(data)
	if err != nil {
		t.Fatalf("GenerateOrderExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	name, _ := f.GetCellValue("Order", "A6")
	if name != "'=HYPERLINK(\"evil\")" {
		t.Errorf("formula not neutralised: %q", name)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
