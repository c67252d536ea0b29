package collections_test

import (
	"testing"

	"quotemanagement/collections"
	"quotemanagement/testhelpers"
)

func TestSeed_CreatesMasterData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	itemsCol, _ := app.FindCollectionByNameOrId("study_items")
	items, err := app.FindAllRecords(itemsCol)
	if err != nil {
		t.Fatalf("query study_items error: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected seeded study items, got none")
	}

	combosCol, _ := app.FindCollectionByNameOrId("combo_study_items")
	combos, _ := app.FindAllRecords(combosCol)
	if len(combos) == 0 {
		t.Error("expected seeded combo study items, got none")
	}

	overlaysCol, _ := app.FindCollectionByNameOrId("oecd_overlays")
	overlays, _ := app.FindAllRecords(overlaysCol)
	if len(overlays) == 0 {
		t.Error("expected seeded OECD overlays, got none")
	}

	classificationsCol, _ := app.FindCollectionByNameOrId("study_classifications")
	classifications, _ := app.FindAllRecords(classificationsCol)
	if len(classifications) != len(items) {
		t.Errorf("expected one classification per study item: %d classifications, %d items",
			len(classifications), len(items))
	}
}

func TestSeed_RoutePresenceFlags(t *testing.T) {
	app := testhelpers.NewSeededTestApp(t)

	// The 26-week rat study is oral-only; its IV flag must stay false so the
	// engine sees the route as unavailable rather than free.
	records, err := app.FindRecordsByFilter("study_items", "item_id = 5", "", 1, 0, nil)
	if err != nil || len(records) != 1 {
		t.Fatalf("expected exactly one item 5: %v (%d records)", err, len(records))
	}
	rec := records[0]
	if !rec.GetBool("oral_offered") {
		t.Error("item 5 should offer the oral route")
	}
	if rec.GetBool("iv_offered") {
		t.Error("item 5 should not offer the iv route")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	itemsCol, _ := app.FindCollectionByNameOrId("study_items")
	first, _ := app.FindAllRecords(itemsCol)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	second, _ := app.FindAllRecords(itemsCol)

	if len(first) != len(second) {
		t.Errorf("second Seed() changed item count: %d -> %d", len(first), len(second))
	}
}
