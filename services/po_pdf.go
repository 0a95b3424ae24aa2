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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePOPDF creates the distributor purchase-order PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePOPDF(data POData) ([]byte, error) {
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

	addPOHeader(m, data)
	addPOTableHeader(m)
	for _, r := range data.Rows {
		addPORow(m, r)
	}
	addPOTotals(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PO PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addPOHeader adds the title block with project reference and order date.
func addPOHeader(m core.Maroto, data POData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New("NogaHub Audio", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("PURCHASE ORDER", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Ref: %s / %s", data.ProjectName, data.ClientName), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addPOTableHeader adds the column headers for the order table.
func addPOTableHeader(m core.Maroto) {
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
				text.New("Dealer Price", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addPORow adds one order line.
func addPORow(m core.Maroto, r PORow) {
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
			col.New(4).Add(text.New(r.Name, leftText)),
			col.New(1).Add(text.New(formatQuotationQty(r.Qty), rightText)),
			col.New(2).Add(text.New(FormatUSD(r.DealerUSD), rightText)),
			col.New(2).Add(text.New(FormatUSD(r.TotalUSD), rightText)),
		),
	)
}

// addPOTotals adds the order total and shipping weight.
func addPOTotals(m core.Maroto, data POData) {
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
				text.New("Order Total", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatUSD(data.TotalUSD), labelStyle),
			).WithStyle(summaryCell),
		),
	)
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Shipping Weight", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("%.1f kg", data.TotalWeight), labelStyle),
			).WithStyle(summaryCell),
		),
	)
}
