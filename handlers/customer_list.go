package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/templates"
)

// HandleCustomerList renders the customer list page.
func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("customers")
		if err != nil {
			log.Printf("customer_list: could not query customers: %v", err)
			return e.String(500, "Internal error")
		}

		items := make([]templates.CustomerListItem, 0, len(records))
		for _, rec := range records {
			quotes, err := app.FindRecordsByFilter(
				"quotations",
				"customer = {:customerId}",
				"", 0, 0,
				map[string]any{"customerId": rec.Id},
			)
			if err != nil {
				log.Printf("customer_list: could not count quotations for %s: %v", rec.Id, err)
			}

			items = append(items, templates.CustomerListItem{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				Code:       rec.GetString("code"),
				Company:    rec.GetString("company"),
				Email:      rec.GetString("email"),
				QuoteCount: len(quotes),
			})
		}

		data := templates.CustomerListData{
			Items:          items,
			TotalCustomers: len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CustomerListContent(data)
		} else {
			component = templates.CustomerListPage(data, GetActiveCustomer(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
