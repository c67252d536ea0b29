package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
	"quotemanagement/templates"
)

// HandleQuoteView renders the quotation detail page: line table, computed
// totals and the catalog picker.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		md, err := services.LoadMasterData(app)
		if err != nil {
			log.Printf("quote_view: could not load master data: %v", err)
			return e.String(500, "Internal error")
		}

		data, err := buildQuoteViewData(app, rec, md)
		if err != nil {
			log.Printf("quote_view: could not compute quotation %s: %v", rec.Id, err)
			return e.String(500, "Internal error")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteViewContent(data)
		} else {
			component = templates.QuoteViewPage(data, GetActiveCustomer(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildQuoteViewData assembles the full detail-page model for a quotation.
func buildQuoteViewData(app *pocketbase.PocketBase, rec *core.Record, md services.MasterData) (templates.QuoteViewData, error) {
	calc, err := computeQuote(app, rec, md)
	if err != nil {
		return templates.QuoteViewData{}, err
	}

	customerName := ""
	if customer, err := app.FindRecordById("customers", rec.GetString("customer")); err == nil {
		customerName = customer.GetString("name")
	}

	modeLabel := "Standard pricing"
	if calc.Mode == services.PricingOECDAdjusted {
		modeLabel = "OECD-adjusted (GLP)"
	}

	createdDate := "—"
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return templates.QuoteViewData{
		ID:               rec.Id,
		Title:            rec.GetString("title"),
		QuoteNumber:      rec.GetString("quote_number"),
		CustomerName:     customerName,
		PricingModeLabel: modeLabel,
		CategoryLabel:    calc.Category.Label(),
		CreatedDate:      createdDate,
		Lines:            buildLineViews(calc.Lines),
		Totals:           buildTotalsView(calc, rec.GetFloat("discount_percent")),
		Catalog:          buildCatalogViews(md, calc.Mode),
	}, nil
}
