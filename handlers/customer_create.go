package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/templates"
)

// HandleCustomerCreate renders the empty customer form.
func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.CustomerFormPage(templates.CustomerFormData{}, GetActiveCustomer(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCustomerSave creates a customer from the submitted form.
func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := templates.CustomerFormData{
			Name:    strings.TrimSpace(e.Request.FormValue("name")),
			Code:    strings.ToUpper(strings.TrimSpace(e.Request.FormValue("code"))),
			Company: strings.TrimSpace(e.Request.FormValue("company")),
			Email:   strings.TrimSpace(e.Request.FormValue("email")),
			Phone:   strings.TrimSpace(e.Request.FormValue("phone")),
		}

		if data.Name == "" {
			data.Error = "Customer name is required"
			SetToast(e, "warning", data.Error)
			component := templates.CustomerFormPage(data, GetActiveCustomer(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: could not find customers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", data.Name)
		record.Set("code", data.Code)
		record.Set("company", data.Company)
		record.Set("email", data.Email)
		record.Set("phone", data.Phone)

		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Customer created")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}
