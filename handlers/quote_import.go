package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
)

const maxImportSize = 10 << 20 // 10 MB

// HandleLineImport accepts a CSV/XLSX upload of catalog item ids and adds
// the valid rows as quotation lines. Prices are resolved through the
// quotation's pricing mode at import time; single items default to the
// oral route and combinations to the two-component tier.
func HandleLineImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if err := e.Request.ParseMultipartForm(maxImportSize); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid upload")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "No file uploaded")
		}
		defer file.Close()

		md, err := services.LoadMasterData(app)
		if err != nil {
			log.Printf("quote_import: could not load master data: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		result, err := services.ValidateLineImport(file, header.Filename, md)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}
		if result.ValidRows == 0 {
			return ErrorToast(e, http.StatusUnprocessableEntity,
				fmt.Sprintf("No importable rows (%d with errors)", result.ErrorRows))
		}

		mode, err := services.ParsePricingMode(rec.GetString("pricing_mode"))
		if err != nil {
			log.Printf("quote_import: quotation %s has invalid pricing mode: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		sortOrder, err := nextSortOrder(app, rec.Id)
		if err != nil {
			log.Printf("quote_import: could not determine sort order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		col, err := app.FindCollectionByNameOrId("quotation_lines")
		if err != nil {
			log.Printf("quote_import: could not find quotation_lines collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		imported := 0
		skipped := result.ErrorRows
		for _, row := range result.Rows {
			var (
				name      string
				category  string
				lineRoute string
				price     int64
			)

			if item, ok := md.Items[row.ItemID]; ok {
				resolved, ok := services.ResolvePrice(item, services.RouteOral, mode, md.PrimaryOverlay, md.SecondaryOverlay)
				if !ok {
					skipped++
					continue
				}
				name = singleLineName(item, services.RouteOral)
				category = item.Category
				lineRoute = string(services.RouteOral)
				price = resolved
			} else if combo, ok := md.Combos[row.ItemID]; ok {
				resolved, err := services.ResolveComboPrice(combo, 2)
				if err != nil {
					skipped++
					continue
				}
				name = comboLineName(combo, 2)
				category = combo.Category
				price = resolved
			} else {
				skipped++
				continue
			}

			if row.Name != "" {
				name = row.Name
			}

			line := core.NewRecord(col)
			line.Set("quotation", rec.Id)
			line.Set("sort_order", sortOrder)
			line.Set("item_id", row.ItemID)
			line.Set("name", name)
			line.Set("category", category)
			line.Set("route", lineRoute)
			line.Set("price", price)
			line.Set("is_option", row.IsOption)

			if err := app.Save(line); err != nil {
				log.Printf("quote_import: could not save line: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			sortOrder++
			imported++
		}

		msg := fmt.Sprintf("%d lines imported", imported)
		if skipped > 0 {
			msg = fmt.Sprintf("%d lines imported, %d skipped", imported, skipped)
		}
		SetToast(e, "success", msg)

		return renderQuoteLines(app, e, rec)
	}
}
