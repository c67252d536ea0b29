package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/templates"
)

type contextKey string

const ActiveCustomerKey contextKey = "activeCustomer"

// GetActiveCustomer extracts the active customer from the request context.
func GetActiveCustomer(r *http.Request) *templates.ActiveCustomer {
	if val, ok := r.Context().Value(ActiveCustomerKey).(*templates.ActiveCustomer); ok {
		return val
	}
	return nil
}

// ActiveCustomerMiddleware reads the "active_customer" cookie, loads the
// customer record and stores it in the request context so handlers and
// templates can scope lists and default the quotation form.
func ActiveCustomerMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var active *templates.ActiveCustomer

		cookie, err := e.Request.Cookie("active_customer")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("customers", cookie.Value)
			if err == nil {
				active = &templates.ActiveCustomer{
					ID:   rec.Id,
					Name: rec.GetString("name"),
				}
			}
		}

		if active != nil {
			ctx := context.WithValue(e.Request.Context(), ActiveCustomerKey, active)
			e.Request = e.Request.WithContext(ctx)
		}

		return e.Next()
	}
}

// HandleCustomerActivate sets the active-customer cookie.
func HandleCustomerActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("customers", id)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Customer not found")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_customer",
			Value:    rec.Id,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})
		SetToast(e, "success", rec.GetString("name")+" selected")
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleCustomerDeactivate clears the active-customer cookie.
func HandleCustomerDeactivate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   "active_customer",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.NoContent(http.StatusNoContent)
	}
}
