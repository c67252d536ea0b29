package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/templates"
)

// HandleCustomerEdit renders the customer form pre-filled from the record.
func HandleCustomerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("customers", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Customer not found")
		}

		data := templates.CustomerFormData{
			ID:      rec.Id,
			Name:    rec.GetString("name"),
			Code:    rec.GetString("code"),
			Company: rec.GetString("company"),
			Email:   rec.GetString("email"),
			Phone:   rec.GetString("phone"),
		}
		component := templates.CustomerFormPage(data, GetActiveCustomer(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCustomerUpdate applies the submitted form to an existing customer.
func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("customers", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Customer not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			data := templates.CustomerFormData{
				ID:      rec.Id,
				Code:    rec.GetString("code"),
				Company: rec.GetString("company"),
				Email:   rec.GetString("email"),
				Phone:   rec.GetString("phone"),
				Error:   "Customer name is required",
			}
			SetToast(e, "warning", data.Error)
			component := templates.CustomerFormPage(data, GetActiveCustomer(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		rec.Set("name", name)
		rec.Set("code", strings.ToUpper(strings.TrimSpace(e.Request.FormValue("code"))))
		rec.Set("company", strings.TrimSpace(e.Request.FormValue("company")))
		rec.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		rec.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))

		if err := app.Save(rec); err != nil {
			log.Printf("customer_edit: could not save customer %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Customer updated")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}
