package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quotemanagement/testhelpers"
)

func TestHandleCustomerList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "Boryung", "BRG")

	handler := HandleCustomerList(app)

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Boryung", "BRG")
}

func TestHandleCustomerSave_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("name", "Boryung")
	form.Set("code", "brg")
	form.Set("company", "Boryung Pharm")
	form.Set("email", "contact@boryung.example")

	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected redirect 302, got %d", rec.Code)
	}

	saved, err := app.FindRecordsByFilter("customers", "name = 'Boryung'", "", 1, 0)
	if err != nil || len(saved) == 0 {
		t.Fatalf("customer was not saved: %v", err)
	}
	if got := saved[0].GetString("code"); got != "BRG" {
		t.Errorf("code = %q, want uppercased BRG", got)
	}
}

func TestHandleCustomerSave_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("company", "Nameless Inc")

	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Customer name is required")

	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 0 {
		t.Errorf("expected no customers saved, got %d", len(customers))
	}
}

func TestHandleCustomerUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Boryung", "BRG")

	handler := HandleCustomerUpdate(app)

	form := url.Values{}
	form.Set("name", "Boryung Pharm")
	form.Set("code", "BRG")

	req := httptest.NewRequest(http.MethodPost, "/customers/"+customer.Id+"/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	updated, err := app.FindRecordById("customers", customer.Id)
	if err != nil {
		t.Fatalf("could not reload customer: %v", err)
	}
	if got := updated.GetString("name"); got != "Boryung Pharm" {
		t.Errorf("name = %q", got)
	}
}

func TestHandleCustomerDelete_Cascades(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Boryung", "BRG")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "BRG package")
	testhelpers.CreateTestLine(t, app, quote.Id, 1, "단회투여독성", 28_000_000, false)

	handler := HandleCustomerDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 0 {
		t.Errorf("expected no customers, got %d", len(customers))
	}
	quotes, _ := app.FindAllRecords("quotations")
	if len(quotes) != 0 {
		t.Errorf("expected no quotations, got %d", len(quotes))
	}
	lines, _ := app.FindAllRecords("quotation_lines")
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestHandleCustomerActivate_SetsCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Boryung", "BRG")

	handler := HandleCustomerActivate(app)

	req := httptest.NewRequest(http.MethodPost, "/customers/"+customer.Id+"/activate", nil)
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "active_customer" && c.Value == customer.Id {
			found = true
		}
	}
	if !found {
		t.Error("expected active_customer cookie to be set")
	}
}
