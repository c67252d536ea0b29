// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewSeededTestApp creates a test app with the master data loaded.
func NewSeededTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test app: %v", err)
	}
	return app
}

// CreateTestCustomer creates a customer record and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name, code string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("code", code)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation linked to a customer and returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, customerID, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("title", title)
	record.Set("pricing_mode", "standard")
	record.Set("category", "drug_single")
	record.Set("discount_percent", 0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestLine creates a quotation line and returns it.
func CreateTestLine(t *testing.T, app *pocketbase.PocketBase, quotationID string, itemID int, name string, price int64, isOption bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_lines")
	if err != nil {
		t.Fatalf("failed to find quotation_lines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("sort_order", 1)
	record.Set("item_id", itemID)
	record.Set("name", name)
	record.Set("price", price)
	record.Set("is_option", isOption)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q", frag)
		}
	}
}
