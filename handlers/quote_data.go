package handlers

import (
	"fmt"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
	"quotemanagement/templates"
)

// loadSelectedLines reads a quotation's lines in sort order and maps them to
// the engine's SelectedLine values.
func loadSelectedLines(app *pocketbase.PocketBase, quoteID string) ([]services.SelectedLine, error) {
	records, err := app.FindRecordsByFilter(
		"quotation_lines",
		"quotation = {:quoteId}",
		"sort_order",
		0,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return nil, fmt.Errorf("load quotation lines: %w", err)
	}

	lines := make([]services.SelectedLine, 0, len(records))
	for _, rec := range records {
		lines = append(lines, services.SelectedLine{
			ID:       rec.Id,
			ItemID:   int(rec.GetFloat("item_id")),
			Name:     rec.GetString("name"),
			Category: rec.GetString("category"),
			Price:    int64(rec.GetFloat("price")),
			IsOption: rec.GetBool("is_option"),
		})
	}
	return lines, nil
}

// quoteComputation bundles the engine outputs for one quotation.
type quoteComputation struct {
	Lines       []services.SelectedLine
	Formulation services.FormulationCost
	Totals      services.QuoteTotals
	Category    services.FormulationCategory
	Mode        services.PricingMode
}

// computeQuote runs the pricing engine over a quotation record.
func computeQuote(app *pocketbase.PocketBase, quote *core.Record, md services.MasterData) (quoteComputation, error) {
	var calc quoteComputation

	category, err := services.ParseFormulationCategory(quote.GetString("category"))
	if err != nil {
		return calc, err
	}
	mode, err := services.ParsePricingMode(quote.GetString("pricing_mode"))
	if err != nil {
		return calc, err
	}

	lines, err := loadSelectedLines(app, quote.Id)
	if err != nil {
		return calc, err
	}

	formulation := services.ComputeFormulationCost(lines, category, md.Items, md.Classifications)
	totals := services.AggregateTotals(lines, formulation.Total(), quote.GetFloat("discount_percent"))

	calc.Lines = lines
	calc.Formulation = formulation
	calc.Totals = totals
	calc.Category = category
	calc.Mode = mode
	return calc, nil
}

// buildTotalsView formats a computation for the totals block.
func buildTotalsView(calc quoteComputation, discountPercent float64) templates.QuoteTotalsView {
	return templates.QuoteTotalsView{
		SubtotalTest:        services.FormatKRW(calc.Totals.SubtotalTest),
		SubtotalFormulation: services.FormatKRW(calc.Totals.SubtotalFormulation),
		HasFormulation:      calc.Totals.SubtotalFormulation > 0,
		AssayBase:           services.FormatKRW(calc.Formulation.AssayBase),
		ContentTotal:        services.FormatKRW(calc.Formulation.ContentTotal),
		HFFormulation:       services.FormatKRW(calc.Formulation.HFFormulation),
		DiscountLabel:       fmt.Sprintf("Discount (%.1f%%)", discountPercent),
		DiscountAmount:      services.FormatKRW(calc.Totals.DiscountAmount),
		HasDiscount:         calc.Totals.DiscountAmount > 0,
		TotalAmount:         services.FormatKRW(calc.Totals.TotalAmount),
		TotalShort:          services.FormatManwon(calc.Totals.TotalAmount),
	}
}

// buildLineViews numbers and formats the quotation lines for display.
func buildLineViews(lines []services.SelectedLine) []templates.QuoteLineView {
	rows := services.BuildQuoteExportRows(lines)
	views := make([]templates.QuoteLineView, len(lines))
	for i, line := range lines {
		views[i] = templates.QuoteLineView{
			ID:       line.ID,
			Index:    rows[i].Index,
			Name:     line.Name,
			Category: line.Category,
			Amount:   services.FormatKRW(line.Price),
			IsOption: line.IsOption,
		}
	}
	return views
}

// buildCatalogViews renders the item picker with prices resolved for the
// quotation's pricing mode, so the user sees the amount a line would bill at.
func buildCatalogViews(md services.MasterData, mode services.PricingMode) []templates.CatalogItemView {
	views := make([]templates.CatalogItemView, 0, len(md.Items)+len(md.Combos))

	for _, id := range sortedItemIDs(md.Items) {
		item := md.Items[id]
		view := templates.CatalogItemView{
			ItemID:    item.ID,
			Name:      fmt.Sprintf("%s (%s)", item.Category, item.Species),
			Category:  item.Category,
			Duration:  item.Duration,
			PriceOral: "—",
			PriceIV:   "—",
		}
		if p, ok := services.ResolvePrice(item, services.RouteOral, mode, md.PrimaryOverlay, md.SecondaryOverlay); ok {
			view.PriceOral = services.FormatKRW(p)
		}
		if p, ok := services.ResolvePrice(item, services.RouteIV, mode, md.PrimaryOverlay, md.SecondaryOverlay); ok {
			view.PriceIV = services.FormatKRW(p)
		}
		views = append(views, view)
	}

	for _, id := range sortedItemIDs(md.Combos) {
		combo := md.Combos[id]
		views = append(views, templates.CatalogItemView{
			ItemID:    combo.ID,
			Name:      fmt.Sprintf("%s (%s)", combo.Category, combo.Species),
			Category:  combo.Category,
			Duration:  combo.Duration,
			PriceOral: services.FormatKRW(combo.PricePair),
			PriceIV:   "—",
			IsCombo:   true,
		})
	}

	return views
}

func sortedItemIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
