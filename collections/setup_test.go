package collections_test

import (
	"testing"

	"quotemanagement/collections"
	"quotemanagement/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"customers",
	"quotations",
	"quotation_lines",
	"study_items",
	"combo_study_items",
	"oecd_overlays",
	"study_classifications",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_QuotationFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotations")

	for _, field := range []string{"customer", "title", "quote_number", "pricing_mode", "category", "discount_percent"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("quotations is missing field %q", field)
		}
	}
}

func TestSetup_StudyItemPresenceFlags(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("study_items")

	for _, field := range []string{"oral_offered", "price_oral", "iv_offered", "price_iv"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("study_items is missing field %q", field)
		}
	}
}
