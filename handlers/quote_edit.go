package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
	"quotemanagement/templates"
)

// HandleQuoteEdit renders the settings form of an existing quotation.
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		_, categories, err := quoteFormOptions(app)
		if err != nil {
			log.Printf("quote_edit: could not load form options: %v", err)
			return e.String(500, "Internal error")
		}

		data := templates.QuoteFormData{
			ID:              rec.Id,
			Title:           rec.GetString("title"),
			CustomerID:      rec.GetString("customer"),
			PricingMode:     rec.GetString("pricing_mode"),
			Category:        rec.GetString("category"),
			Categories:      categories,
			DiscountPercent: rec.GetFloat("discount_percent"),
		}
		component := templates.QuoteFormPage(data, GetActiveCustomer(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteUpdate applies the settings form to a quotation. When the
// pricing mode changes, every single-item line is re-resolved against the
// new mode so stored line prices stay consistent with it.
func HandleQuoteUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		title := e.Request.FormValue("title")
		mode, err := services.ParsePricingMode(e.Request.FormValue("pricing_mode"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown pricing mode")
		}
		category, err := services.ParseFormulationCategory(e.Request.FormValue("category"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown product category")
		}
		discount := parseDiscount(e.Request.FormValue("discount_percent"))

		if title == "" {
			return ErrorToast(e, http.StatusBadRequest, "Title is required")
		}

		modeChanged := rec.GetString("pricing_mode") != string(mode)

		rec.Set("title", title)
		rec.Set("pricing_mode", string(mode))
		rec.Set("category", string(category))
		rec.Set("discount_percent", discount)

		if err := app.Save(rec); err != nil {
			log.Printf("quote_edit: could not save quotation %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if modeChanged {
			if err := repriceQuoteLines(app, rec.Id, mode); err != nil {
				log.Printf("quote_edit: could not reprice lines of %s: %v", rec.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		SetToast(e, "success", "Quotation updated")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes/"+rec.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes/"+rec.Id)
	}
}

// repriceQuoteLines re-resolves stored line prices after a pricing-mode
// change. Combination lines keep their tiered price since the overlay
// tables only cover single items.
func repriceQuoteLines(app *pocketbase.PocketBase, quoteID string, mode services.PricingMode) error {
	md, err := services.LoadMasterData(app)
	if err != nil {
		return err
	}

	records, err := app.FindRecordsByFilter(
		"quotation_lines",
		"quotation = {:quoteId}",
		"sort_order", 0, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return fmt.Errorf("load quotation lines: %w", err)
	}

	for _, line := range records {
		itemID := int(line.GetFloat("item_id"))
		item, ok := md.Items[itemID]
		if !ok {
			continue
		}
		route, err := services.ParseRoute(line.GetString("route"))
		if err != nil {
			continue
		}
		price, ok := services.ResolvePrice(item, route, mode, md.PrimaryOverlay, md.SecondaryOverlay)
		if !ok {
			// The route is not offered under the new mode's tables; the
			// stored price stays so the line remains visible for review.
			continue
		}
		line.Set("price", price)
		if err := app.Save(line); err != nil {
			return fmt.Errorf("save repriced line %s: %w", line.Id, err)
		}
	}
	return nil
}
