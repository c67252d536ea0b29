package services

import (
	"testing"
	"time"

	"quotemanagement/testhelpers"
)

func TestFormatQuoteNumber(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		year     string
		sequence int
		expect   string
	}{
		{"first quote", "PHX", "25", 1, "CHM-QT-PHX-25-001"},
		{"double digit sequence", "PHX", "25", 42, "CHM-QT-PHX-25-042"},
		{"large sequence", "ACME", "26", 123, "CHM-QT-ACME-26-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatQuoteNumber(tt.code, tt.year, tt.sequence)
			if got != tt.expect {
				t.Errorf("formatQuoteNumber(%q, %q, %d) = %q, want %q",
					tt.code, tt.year, tt.sequence, got, tt.expect)
			}
		})
	}
}

func TestGenerateQuoteNumber_Sequence(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Phoenix Pharm", "PHX")
	now := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	first, err := GenerateQuoteNumber(app, customer.Id, now)
	if err != nil {
		t.Fatalf("GenerateQuoteNumber() error = %v", err)
	}
	if first != "CHM-QT-PHX-25-001" {
		t.Errorf("first quote number = %q, want CHM-QT-PHX-25-001", first)
	}

	// Store a quotation carrying the first number; the next one increments.
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "Tox package")
	quote.Set("quote_number", first)
	if err := app.Save(quote); err != nil {
		t.Fatalf("save quotation: %v", err)
	}

	second, err := GenerateQuoteNumber(app, customer.Id, now)
	if err != nil {
		t.Fatalf("GenerateQuoteNumber() error = %v", err)
	}
	if second != "CHM-QT-PHX-25-002" {
		t.Errorf("second quote number = %q, want CHM-QT-PHX-25-002", second)
	}
}

func TestGenerateQuoteNumber_FallsBackToCustomerID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "No Code Inc", "")
	now := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	got, err := GenerateQuoteNumber(app, customer.Id, now)
	if err != nil {
		t.Fatalf("GenerateQuoteNumber() error = %v", err)
	}
	want := formatQuoteNumber(customer.Id, "25", 1)
	if got != want {
		t.Errorf("quote number = %q, want %q", got, want)
	}
}

func TestGenerateQuoteNumber_UnknownCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := GenerateQuoteNumber(app, "missing", time.Now()); err == nil {
		t.Error("expected error for unknown customer")
	}
}
