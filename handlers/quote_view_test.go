package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotemanagement/testhelpers"
)

func TestHandleQuoteView(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Celltrion", "CTR")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "CTR tox package")
	quote.Set("quote_number", "CHM-QT-CTR-26-001")
	quote.Set("discount_percent", 10)
	if err := app.Save(quote); err != nil {
		t.Fatalf("could not update quotation: %v", err)
	}
	// In-vivo line with content analysis, duration 2주: 10M assay + 1M content.
	testhelpers.CreateTestLine(t, app, quote.Id, 2, "2주 반복투여독성", 48_000_000, false)

	handler := HandleQuoteView(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// 48M study + 11M formulation = 59M, minus 10% = 53.1M.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"CTR tox package",
		"CHM-QT-CTR-26-001",
		"Celltrion",
		"48,000,000원",
		"11,000,000원",
		"53,100,000원",
		"5,310만원",
	)
}

func TestHandleQuoteView_NotFound(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	handler := HandleQuoteView(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuoteView_CatalogPicker(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Celltrion", "CTR")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "Picker test")

	handler := HandleQuoteView(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Standard pricing shows base prices; item 5 has no IV offering.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"160,000,000원",
		"285,000,000원",
		"—",
		"2제",
	)
}
