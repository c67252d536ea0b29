package services

import "fmt"

// QuoteExportRow is a single quotation line in the export (PDF/Excel).
type QuoteExportRow struct {
	Index    string // "1", "2", ... for primary lines, "+" for option lines
	Name     string
	Category string
	Amount   int64
	IsOption bool
}

// QuoteExportData holds everything the PDF/Excel renderers need.
type QuoteExportData struct {
	Title        string
	QuoteNumber  string
	CustomerName string
	CreatedDate  string

	PricingMode PricingMode
	Category    FormulationCategory

	Rows []QuoteExportRow

	Formulation     FormulationCost
	DiscountPercent float64
	Totals          QuoteTotals
}

// BuildQuoteExportRows numbers the selected lines for document output.
// Primary lines count 1..N; option lines keep their position but are marked
// instead of numbered.
func BuildQuoteExportRows(lines []SelectedLine) []QuoteExportRow {
	rows := make([]QuoteExportRow, 0, len(lines))
	primary := 0
	for _, line := range lines {
		index := "+"
		if !line.IsOption {
			primary++
			index = fmt.Sprintf("%d", primary)
		}
		rows = append(rows, QuoteExportRow{
			Index:    index,
			Name:     line.Name,
			Category: line.Category,
			Amount:   line.Price,
			IsOption: line.IsOption,
		})
	}
	return rows
}
