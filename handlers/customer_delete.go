package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCustomerDelete removes a customer together with their quotations
// and quotation lines, then re-renders the customer list.
func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("customers", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Customer not found")
		}

		quotes, err := app.FindRecordsByFilter(
			"quotations",
			"customer = {:customerId}",
			"", 0, 0,
			map[string]any{"customerId": rec.Id},
		)
		if err != nil {
			log.Printf("customer_delete: could not query quotations for %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		for _, quote := range quotes {
			if err := deleteQuoteLines(app, quote.Id); err != nil {
				log.Printf("customer_delete: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			if err := app.Delete(quote); err != nil {
				log.Printf("customer_delete: could not delete quotation %s: %v", quote.Id, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		name := rec.GetString("name")
		if err := app.Delete(rec); err != nil {
			log.Printf("customer_delete: could not delete customer %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// The deleted customer may still be the active one.
		if cookie, err := e.Request.Cookie("active_customer"); err == nil && cookie.Value == rec.Id {
			http.SetCookie(e.Response, &http.Cookie{
				Name:   "active_customer",
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
		}

		SetToast(e, "success", name+" deleted")
		return HandleCustomerList(app)(e)
	}
}

// deleteQuoteLines removes every line of one quotation.
func deleteQuoteLines(app *pocketbase.PocketBase, quoteID string) error {
	lines, err := app.FindRecordsByFilter(
		"quotation_lines",
		"quotation = {:quoteId}",
		"", 0, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := app.Delete(line); err != nil {
			return err
		}
	}
	return nil
}
