package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete removes a quotation and its lines, then re-renders the
// quotation list.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := deleteQuoteLines(app, rec.Id); err != nil {
			log.Printf("quote_delete: could not delete lines of %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		number := rec.GetString("quote_number")
		if err := app.Delete(rec); err != nil {
			log.Printf("quote_delete: could not delete quotation %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", number+" deleted")
		return HandleQuoteList(app)(e)
	}
}
