package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(customerCode, year string, sequence int) string {
	return fmt.Sprintf("CHM-QT-%s-%s-%03d", customerCode, year, sequence)
}

// GenerateQuoteNumber creates the next quotation number for a customer.
// Format: CHM-QT-{customer_code}-{yy}-{sequence}
//   - customer_code: the customer's code field (falls back to the record id)
//   - yy: two-digit calendar year
//   - sequence: 3-digit zero-padded, per customer per year
func GenerateQuoteNumber(app *pocketbase.PocketBase, customerID string, now time.Time) (string, error) {
	customer, err := app.FindRecordById("customers", customerID)
	if err != nil {
		return "", fmt.Errorf("customer not found: %w", err)
	}

	code := customer.GetString("code")
	if code == "" {
		code = customerID
	}

	year := fmt.Sprintf("%02d", now.Year()%100)
	prefix := fmt.Sprintf("CHM-QT-%s-%s-", code, year)

	existing, err := app.FindRecordsByFilter(
		"quotations",
		"customer = {:customerId} && quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{
			"customerId": customerID,
			"prefix":     prefix + "%",
		},
	)
	if err != nil {
		// No quotations yet, start at 1.
		existing = nil
	}

	return formatQuoteNumber(code, year, len(existing)+1), nil
}
