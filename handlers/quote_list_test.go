package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotemanagement/testhelpers"
)

func TestHandleQuoteList_Empty(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No quotations yet")
}

func TestHandleQuoteList_WithQuotation(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Pharmicell", "PHC")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "PHC-101 tox package")
	testhelpers.CreateTestLine(t, app, quote.Id, 1, "단회투여독성", 28_000_000, false)

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	// 28M study + 10M assay + 1M content analysis.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"PHC-101 tox package",
		"Pharmicell",
		"39,000,000원",
	)
}

func TestHandleQuoteList_HTMXReturnsPartial(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	handler := HandleQuoteList(app)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "<html") {
		t.Error("expected a partial without the layout")
	}
}
