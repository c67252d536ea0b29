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

// GenerateQuotePDF renders the quotation preview document using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
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

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, r := range data.Rows {
		addQuoteTableRow(m, r)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title, quote number, customer and date.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote No: %s", data.QuoteNumber), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), metaRight),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", data.CustomerName), meta),
			),
			col.New(6).Add(
				text.New(data.Category.Label(), metaRight),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

func addQuoteTableHeader(m core.Maroto) {
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
			col.New(6).Add(
				text.New("Study", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Category", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Amount", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds one quotation line; option lines are shaded and
// marked instead of numbered.
func addQuoteTableRow(m core.Maroto, r QuoteExportRow) {
	var cellStyle *props.Cell
	textStyle := fontstyle.Bold
	if r.IsOption {
		textStyle = fontstyle.Normal
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  8,
		Style: textStyle,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	colIndex := col.New(1).Add(text.New(r.Index, baseText))
	colName := col.New(6).Add(text.New(r.Name, leftText))
	colCategory := col.New(2).Add(text.New(r.Category, baseText))
	colAmount := col.New(3).Add(text.New(FormatKRW(r.Amount), rightText))

	if cellStyle != nil {
		colIndex = colIndex.WithStyle(cellStyle)
		colName = colName.WithStyle(cellStyle)
		colCategory = colCategory.WithStyle(cellStyle)
		colAmount = colAmount.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colIndex,
			colName,
			colCategory,
			colAmount,
		),
	)
}

// addQuoteSummary adds the subtotal, formulation, discount and grand-total
// block at the bottom of the document.
func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	addSummaryRow := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Study Subtotal", FormatKRW(data.Totals.SubtotalTest))
	if data.Totals.SubtotalFormulation > 0 {
		addSummaryRow("Formulation / Assay", FormatKRW(data.Totals.SubtotalFormulation))
	}
	if data.Totals.DiscountAmount > 0 {
		label := fmt.Sprintf("Discount (%.1f%%)", data.DiscountPercent)
		addSummaryRow(label, "-"+FormatKRW(data.Totals.DiscountAmount))
	}
	addSummaryRow("Grand Total", FormatKRW(data.Totals.TotalAmount))
	addSummaryRow("", fmt.Sprintf("(%s)", FormatManwon(data.Totals.TotalAmount)))
}

// addQuoteFooter adds the pricing-mode note and generated date.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	note := "Standard pricing"
	if data.PricingMode == PricingOECDAdjusted {
		note = "OECD-guideline adjusted pricing (GLP)"
	}

	footer := props.Text{
		Size:  7,
		Align: align.Left,
		Color: &props.Color{Red: 140, Green: 140, Blue: 140},
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(note, footer)),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated on %s", data.CreatedDate), footer),
			),
		),
	)
}
