package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/services"
)

// HandleQuoteExport streams a quotation as a PDF or Excel attachment,
// selected by the format query parameter.
func HandleQuoteExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		data, err := buildQuoteExportData(app, rec)
		if err != nil {
			log.Printf("export: could not build export data for %s: %v", rec.Id, err)
			return e.String(http.StatusInternalServerError, "Failed to build quotation data")
		}

		switch e.Request.URL.Query().Get("format") {
		case "excel":
			content, err := services.GenerateQuoteExcel(data)
			if err != nil {
				log.Printf("export: could not generate Excel for %s: %v", rec.Id, err)
				return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
			}
			filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(data.QuoteNumber))
			e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
			e.Response.Write(content)
			return nil

		case "pdf", "":
			content, err := services.GenerateQuotePDF(data)
			if err != nil {
				log.Printf("export: could not generate PDF for %s: %v", rec.Id, err)
				return e.String(http.StatusInternalServerError, "Failed to generate PDF")
			}
			filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.QuoteNumber))
			e.Response.Header().Set("Content-Type", "application/pdf")
			e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
			e.Response.Write(content)
			return nil

		default:
			return e.String(http.StatusBadRequest, "Unknown export format")
		}
	}
}

// buildQuoteExportData computes the quotation and assembles the document
// model shared by the PDF and Excel renderers.
func buildQuoteExportData(app *pocketbase.PocketBase, rec *core.Record) (services.QuoteExportData, error) {
	md, err := services.LoadMasterData(app)
	if err != nil {
		return services.QuoteExportData{}, err
	}

	calc, err := computeQuote(app, rec, md)
	if err != nil {
		return services.QuoteExportData{}, err
	}

	customerName := ""
	if customer, err := app.FindRecordById("customers", rec.GetString("customer")); err == nil {
		customerName = customer.GetString("name")
	}

	createdDate := ""
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return services.QuoteExportData{
		Title:           rec.GetString("title"),
		QuoteNumber:     rec.GetString("quote_number"),
		CustomerName:    customerName,
		CreatedDate:     createdDate,
		PricingMode:     calc.Mode,
		Category:        calc.Category,
		Rows:            services.BuildQuoteExportRows(calc.Lines),
		Formulation:     calc.Formulation,
		DiscountPercent: rec.GetFloat("discount_percent"),
		Totals:          calc.Totals,
	}, nil
}

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
