package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateOrderPDF renders the order enquiry as a PDF with the same
// columns as the Excel export. Returns the raw PDF bytes.
func GenerateOrderPDF(data OrderExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addOrderHeader(m, data)
	addOrderTableHeader(m)
	for _, r := range data.Rows {
		addOrderTableRow(m, r)
	}
	addOrderSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addOrderHeader adds the customer, PO number and date lines.
func addOrderHeader(m core.Maroto, data OrderExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Order Enquiry - "+data.CustomerName, props.Text{
					Size:  15,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("PO Number: %s", data.PODisplay()), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), metaRight),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addOrderTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Name", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("SKU", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addOrderTableRow(m core.Maroto, r OrderRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New(r.Name, leftText)),
			col.New(3).Add(text.New(r.SKU, baseText)),
			col.New(1).Add(text.New(FormatQty(r.Qty), rightText)),
			col.New(2).Add(text.New(FormatINR(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatINR(r.Total), rightText)),
		),
	)
}

// addOrderSummary adds the item count and grand total footer.
func addOrderSummary(m core.Maroto, data OrderExport) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New(fmt.Sprintf("Total Items: %d", data.ItemCount), labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New("Grand Total: "+FormatINR(data.GrandTotal), labelStyle),
			).WithStyle(summaryCell),
		),
	)
}
