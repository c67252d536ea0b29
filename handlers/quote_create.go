package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
	"quotemanagement/templates"
)

// quoteFormOptions assembles the select-box options of the quotation form.
func quoteFormOptions(app *pocketbase.PocketBase) ([]templates.CustomerOption, []templates.CategoryOption, error) {
	records, err := app.FindAllRecords("customers")
	if err != nil {
		return nil, nil, err
	}

	customers := make([]templates.CustomerOption, 0, len(records))
	for _, rec := range records {
		customers = append(customers, templates.CustomerOption{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}

	categories := make([]templates.CategoryOption, 0, len(services.FormulationCategories))
	for _, c := range services.FormulationCategories {
		categories = append(categories, templates.CategoryOption{
			Value: string(c),
			Label: c.Label(),
		})
	}
	return customers, categories, nil
}

// parseDiscount reads the discount field and clamps it to 0..100.
func parseDiscount(raw string) float64 {
	discount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	if discount < 0 {
		return 0
	}
	if discount > 100 {
		return 100
	}
	return discount
}

// HandleQuoteCreate renders the new-quotation form, defaulting the customer
// to the active one.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customers, categories, err := quoteFormOptions(app)
		if err != nil {
			log.Printf("quote_create: could not load form options: %v", err)
			return e.String(500, "Internal error")
		}

		active := GetActiveCustomer(e.Request)
		data := templates.QuoteFormData{
			Customers:   customers,
			PricingMode: string(services.PricingStandard),
			Category:    string(services.CategoryDrugSingle),
			Categories:  categories,
		}
		if active != nil {
			data.CustomerID = active.ID
		}

		component := templates.QuoteFormPage(data, active)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteSave creates a quotation from the submitted form and assigns
// its quote number.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		title := strings.TrimSpace(e.Request.FormValue("title"))
		customerID := e.Request.FormValue("customer")

		mode, err := services.ParsePricingMode(e.Request.FormValue("pricing_mode"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown pricing mode")
		}
		category, err := services.ParseFormulationCategory(e.Request.FormValue("category"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown product category")
		}
		discount := parseDiscount(e.Request.FormValue("discount_percent"))

		formError := ""
		if title == "" {
			formError = "Title is required"
		} else if _, err := app.FindRecordById("customers", customerID); err != nil {
			formError = "Please select a customer"
		}

		if formError != "" {
			customers, categories, optErr := quoteFormOptions(app)
			if optErr != nil {
				log.Printf("quote_create: could not load form options: %v", optErr)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			SetToast(e, "warning", formError)
			data := templates.QuoteFormData{
				Title:           title,
				CustomerID:      customerID,
				Customers:       customers,
				PricingMode:     string(mode),
				Category:        string(category),
				Categories:      categories,
				DiscountPercent: discount,
				Error:           formError,
			}
			component := templates.QuoteFormPage(data, GetActiveCustomer(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		quoteNumber, err := services.GenerateQuoteNumber(app, customerID, time.Now())
		if err != nil {
			log.Printf("quote_create: could not generate quote number: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quote_create: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("title", title)
		record.Set("customer", customerID)
		record.Set("quote_number", quoteNumber)
		record.Set("pricing_mode", string(mode))
		record.Set("category", string(category))
		record.Set("discount_percent", discount)

		if err := app.Save(record); err != nil {
			log.Printf("quote_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation "+quoteNumber+" created")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes/"+record.Id)
	}
}
