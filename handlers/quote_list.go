package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
	"quotemanagement/templates"
)

// HandleQuoteList returns a handler that renders the quotation list page,
// scoped to the active customer when one is selected.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		active := GetActiveCustomer(e.Request)

		filter := "id != ''"
		params := map[string]any{}
		if active != nil {
			filter = "customer = {:customerId}"
			params["customerId"] = active.ID
		}

		records, err := app.FindRecordsByFilter("quotations", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("quote_list: could not query quotations: %v", err)
			return e.String(500, "Internal error")
		}

		md, err := services.LoadMasterData(app)
		if err != nil {
			log.Printf("quote_list: could not load master data: %v", err)
			return e.String(500, "Internal error")
		}

		var items []templates.QuoteListItem
		var sumTotal int64

		for _, rec := range records {
			calc, err := computeQuote(app, rec, md)
			if err != nil {
				log.Printf("quote_list: could not compute quote %s: %v", rec.Id, err)
				continue
			}
			sumTotal += calc.Totals.TotalAmount

			customerName := ""
			if customer, err := app.FindRecordById("customers", rec.GetString("customer")); err == nil {
				customerName = customer.GetString("name")
			}

			createdDate := "—"
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02 Jan 2006")
			}

			items = append(items, templates.QuoteListItem{
				ID:           rec.Id,
				Title:        rec.GetString("title"),
				QuoteNumber:  rec.GetString("quote_number"),
				CustomerName: customerName,
				CreatedDate:  createdDate,
				Total:        services.FormatKRW(calc.Totals.TotalAmount),
				LineCount:    len(calc.Lines),
			})
		}

		data := templates.QuoteListData{
			Items:       items,
			TotalQuotes: len(records),
			SumTotal:    services.FormatKRW(sumTotal),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data, active)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
