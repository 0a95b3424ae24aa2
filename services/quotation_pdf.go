package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF creates the client quotation PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(data QuotationData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addQuotationTableHeader(m)
	for _, r := range data.EquipmentRows {
		addQuotationRow(m, r)
	}
	addQuotationServices(m, data)
	addQuotationSummary(m, data)
	addQuotationFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the title block with project, client and date.
func addQuotationHeader(m core.Maroto, data QuotationData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("QUOTATION", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Project: %s", data.ProjectName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Client: %s", data.ClientName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addQuotationTableHeader adds the column headers for the equipment table.
func addQuotationTableHeader(m core.Maroto) {
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
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Code", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Unit Price", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addQuotationRow adds one equipment line to the table.
func addQuotationRow(m core.Maroto, r QuotationRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
			col.New(2).Add(text.New(r.Code, leftText)),
			col.New(4).Add(text.New(r.Description, leftText)),
			col.New(1).Add(text.New(formatQuotationQty(r.Qty), rightText)),
			col.New(2).Add(text.New(FormatJOD(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatJOD(r.Total), rightText)),
		),
	)
}

// addQuotationServices adds the services section when any service is priced.
func addQuotationServices(m core.Maroto, data QuotationData) {
	if len(data.ServiceRows) == 0 {
		return
	}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Services", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	rightText := props.Text{Size: 8, Align: align.Right}
	leftText := props.Text{Size: 8, Align: align.Left}
	for _, s := range data.ServiceRows {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(s.Description, leftText)),
				col.New(4).Add(text.New(FormatJOD(s.Amount), rightText)),
			),
		)
	}
}

// addQuotationSummary adds the totals block.
func addQuotationSummary(m core.Maroto, data QuotationData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}
	boldLabel := labelStyle
	boldLabel.Style = fontstyle.Bold
	boldValue := valueStyle
	boldValue.Style = fontstyle.Bold

	addSummaryRow := func(label string, value float64, bold bool) {
		ls, vs := labelStyle, valueStyle
		if bold {
			ls, vs = boldLabel, boldValue
		}
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, ls),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(FormatJOD(value), vs),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Subtotal", data.SubtotalBefore, false)
	if data.DiscountPercent > 0 {
		addSummaryRow(fmt.Sprintf("Discount (%.1f%%)", data.DiscountPercent), -data.DiscountAmount, false)
		addSummaryRow("Subtotal After Discount", data.SubtotalAfter, false)
	}
	addSummaryRow("VAT (16%)", data.TaxAmount, false)
	addSummaryRow("Grand Total", data.GrandTotal, true)
}

// addQuotationFooter adds the amount-in-words line.
func addQuotationFooter(m core.Maroto, data QuotationData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Amount in words: %s", data.AmountInWords),
					props.Text{
						Size:  8,
						Style: fontstyle.Italic,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					},
				),
			),
		),
	)
}

// formatQuotationQty formats a quantity: whole numbers without decimals,
// fractional values with 2 decimal places.
func formatQuotationQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
