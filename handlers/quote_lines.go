package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
	"quotemanagement/templates"
)

// renderQuoteLines recomputes the quotation and renders the lines + totals
// partial every line mutation swaps in.
func renderQuoteLines(app *pocketbase.PocketBase, e *core.RequestEvent, rec *core.Record) error {
	md, err := services.LoadMasterData(app)
	if err != nil {
		log.Printf("quote_lines: could not load master data: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	calc, err := computeQuote(app, rec, md)
	if err != nil {
		log.Printf("quote_lines: could not compute quotation %s: %v", rec.Id, err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	data := templates.QuoteViewData{
		ID:     rec.Id,
		Lines:  buildLineViews(calc.Lines),
		Totals: buildTotalsView(calc, rec.GetFloat("discount_percent")),
	}
	return templates.QuoteLinesBlock(data).Render(e.Request.Context(), e.Response)
}

// nextSortOrder returns one past the highest sort_order of the quotation.
func nextSortOrder(app *pocketbase.PocketBase, quoteID string) (int, error) {
	lines, err := app.FindRecordsByFilter(
		"quotation_lines",
		"quotation = {:quoteId}",
		"-sort_order", 1, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 1, nil
	}
	return int(lines[0].GetFloat("sort_order")) + 1, nil
}

// HandleLineAdd adds one catalog study to a quotation. Single items take a
// route parameter and resolve through the quotation's pricing mode;
// combination items take an arity parameter and resolve through the tier
// table.
func HandleLineAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		itemID, err := strconv.Atoi(e.Request.FormValue("item_id"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid item")
		}

		md, err := services.LoadMasterData(app)
		if err != nil {
			log.Printf("quote_lines: could not load master data: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		mode, err := services.ParsePricingMode(rec.GetString("pricing_mode"))
		if err != nil {
			log.Printf("quote_lines: quotation %s has invalid pricing mode: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var (
			name      string
			category  string
			lineRoute string
			price     int64
		)

		if item, ok := md.Items[itemID]; ok {
			route, err := services.ParseRoute(e.Request.FormValue("route"))
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Unknown administration route")
			}
			resolved, ok := services.ResolvePrice(item, route, mode, md.PrimaryOverlay, md.SecondaryOverlay)
			if !ok {
				return ErrorToast(e, http.StatusUnprocessableEntity, "This study is not offered for that route")
			}
			name = singleLineName(item, route)
			category = item.Category
			lineRoute = string(route)
			price = resolved
		} else if combo, ok := md.Combos[itemID]; ok {
			arity, err := strconv.Atoi(e.Request.FormValue("arity"))
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Invalid component count")
			}
			resolved, err := services.ResolveComboPrice(combo, arity)
			if err != nil {
				if errors.Is(err, services.ErrInvalidComboArity) {
					return ErrorToast(e, http.StatusBadRequest, "Combination studies support 2 to 4 components")
				}
				log.Printf("quote_lines: could not resolve combo price: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			name = comboLineName(combo, arity)
			category = combo.Category
			price = resolved
		} else {
			return ErrorToast(e, http.StatusNotFound, "Unknown catalog item")
		}

		sortOrder, err := nextSortOrder(app, rec.Id)
		if err != nil {
			log.Printf("quote_lines: could not determine sort order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		col, err := app.FindCollectionByNameOrId("quotation_lines")
		if err != nil {
			log.Printf("quote_lines: could not find quotation_lines collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		line := core.NewRecord(col)
		line.Set("quotation", rec.Id)
		line.Set("sort_order", sortOrder)
		line.Set("item_id", itemID)
		line.Set("name", name)
		line.Set("category", category)
		line.Set("route", lineRoute)
		line.Set("price", price)
		line.Set("is_option", false)

		if err := app.Save(line); err != nil {
			log.Printf("quote_lines: could not save line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderQuoteLines(app, e, rec)
	}
}

// HandleLineToggleOption flips a line between primary and option.
func HandleLineToggleOption(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		line, err := app.FindRecordById("quotation_lines", e.Request.PathValue("lineId"))
		if err != nil || line.GetString("quotation") != rec.Id {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}

		line.Set("is_option", !line.GetBool("is_option"))
		if err := app.Save(line); err != nil {
			log.Printf("quote_lines: could not toggle option on %s: %v", line.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderQuoteLines(app, e, rec)
	}
}

// HandleLineDelete removes one line from a quotation.
func HandleLineDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		line, err := app.FindRecordById("quotation_lines", e.Request.PathValue("lineId"))
		if err != nil || line.GetString("quotation") != rec.Id {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}

		if err := app.Delete(line); err != nil {
			log.Printf("quote_lines: could not delete line %s: %v", line.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderQuoteLines(app, e, rec)
	}
}

func singleLineName(item services.StudyItem, route services.Route) string {
	routeLabel := "경구"
	if route == services.RouteIV {
		routeLabel = "정맥"
	}
	if item.Duration != "" && item.Duration != "-" {
		return fmt.Sprintf("%s %s %s (%s)", item.Category, item.Duration, routeLabel, item.Species)
	}
	return fmt.Sprintf("%s %s (%s)", item.Category, routeLabel, item.Species)
}

func comboLineName(combo services.ComboStudyItem, arity int) string {
	return fmt.Sprintf("%s %s %d제 (%s)", combo.Category, combo.Duration, arity, combo.Species)
}
