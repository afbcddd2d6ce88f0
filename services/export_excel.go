package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const orderSheetName = "Order"

// GenerateOrderExcel creates the downloadable order workbook: one row
// per cart line with columns name, SKU, quantity, price and total, and
// a grand-total footer. The bytes are returned for the handler to serve
// as an attachment.
func GenerateOrderExcel(data OrderExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, orderSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]

	widths := []float64{40, 16, 10, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(orderSheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// Heading rows: customer, PO reference, date.
	if err := f.MergeCell(orderSheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(orderSheetName, "A1", sanitizeExcelCell("Order Enquiry - "+data.CustomerName))
	f.SetCellStyle(orderSheetName, "A1", lastCol+"1", titleStyle)

	f.SetCellValue(orderSheetName, "A2", sanitizeExcelCell("PO Number: "+data.PODisplay()))
	f.SetCellStyle(orderSheetName, "A2", "A2", subtitleStyle)

	f.SetCellValue(orderSheetName, "A3", "Date: "+data.CreatedDate)
	f.SetCellStyle(orderSheetName, "A3", "A3", subtitleStyle)

	// Column headers on row 5.
	headers := []string{"Name", "SKU", "Quantity", "Price", "Total"}
	for i, h := range headers {
		f.SetCellValue(orderSheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(orderSheetName, "A5", lastCol+"5", headerStyle)

	// One row per cart line.
	row := 6
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(orderSheetName, "A"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(orderSheetName, "B"+rowStr, sanitizeExcelCell(r.SKU))
		f.SetCellValue(orderSheetName, "C"+rowStr, r.Qty)
		f.SetCellValue(orderSheetName, "D"+rowStr, FormatINR(r.UnitPrice))
		f.SetCellValue(orderSheetName, "E"+rowStr, FormatINR(r.Total))
		f.SetCellStyle(orderSheetName, "A"+rowStr, lastCol+rowStr, lineStyle)
		row++
	}

	// Grand total footer.
	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(orderSheetName, "D"+totalRow, "Grand Total:")
	f.SetCellStyle(orderSheetName, "D"+totalRow, "D"+totalRow, totalLabelStyle)
	f.SetCellValue(orderSheetName, "E"+totalRow, FormatINR(data.GrandTotal))
	f.SetCellStyle(orderSheetName, "E"+totalRow, "E"+totalRow, totalValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
