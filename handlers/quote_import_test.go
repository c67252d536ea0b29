package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotemanagement/testhelpers"
)

func newImportRequest(t *testing.T, quoteID, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("could not create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("could not write file content: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/quotes/"+quoteID+"/lines/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetPathValue("id", quoteID)
	return req
}

func TestHandleLineImport_CSV(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "GC Biopharma", "GCB")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "GCB package")

	handler := HandleLineImport(app)

	csv := "item_id,name,option\n1,,\n7,복귀돌연변이시험,yes\n"
	req := newImportRequest(t, quote.Id, "lines.csv", csv)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	lines, err := app.FindAllRecords("quotation_lines")
	if err != nil || len(lines) != 2 {
		t.Fatalf("expected 2 imported lines, got %d (err %v)", len(lines), err)
	}

	byItem := map[int]int64{}
	options := map[int]bool{}
	for _, line := range lines {
		id := int(line.GetFloat("item_id"))
		byItem[id] = int64(line.GetFloat("price"))
		options[id] = line.GetBool("is_option")
	}
	if byItem[1] != 28_000_000 {
		t.Errorf("item 1 price = %d, want 28000000", byItem[1])
	}
	if byItem[7] != 18_000_000 {
		t.Errorf("item 7 price = %d, want 18000000", byItem[7])
	}
	if !options[7] || options[1] {
		t.Errorf("option flags wrong: %v", options)
	}
}

func TestHandleLineImport_UnknownItemsReported(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "GC Biopharma", "GCB")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "GCB package")

	handler := HandleLineImport(app)

	csv := "item_id\n999\nabc\n"
	req := newImportRequest(t, quote.Id, "lines.csv", csv)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}

	lines, _ := app.FindAllRecords("quotation_lines")
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestHandleLineImport_UnsupportedFormat(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "GC Biopharma", "GCB")
	quote := testhelpers.CreateTestQuotation(t, app, customer.Id, "GCB package")

	handler := HandleLineImport(app)

	req := newImportRequest(t, quote.Id, "lines.txt", "item_id\n1\n")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
