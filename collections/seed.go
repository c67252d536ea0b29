package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type studyItemDef struct {
	itemID    int
	category  string
	species   string
	duration  string
	route     string
	weeks     string
	priceOral int64 // -1 means the route is not offered
	priceIV   int64
}

type comboItemDef struct {
	itemID   int
	category string
	species  string
	duration string
	priceP2  int64
	priceP3  int64
	priceP4  int64
}

type overlayDef struct {
	itemID    int
	source    string // "primary" | "secondary"
	priceOral int64  // -1 means no override for the route
	priceIV   int64
}

type classificationDef struct {
	itemID          int
	testType        int // 1 = in-vivo, 2 = in-vitro
	contentAnalysis bool
}

// ── Master data ──────────────────────────────────────────────────────────

var studyItemDefs = []studyItemDef{
	{1, "일반독성", "Rat", "단회", "경구/정맥", "1", 28_000_000, 34_000_000},
	{2, "일반독성", "Rat", "2주", "경구/정맥", "2", 48_000_000, 58_000_000},
	{3, "일반독성", "Rat", "4주", "경구/정맥", "4", 72_000_000, 86_000_000},
	{4, "일반독성", "Rat", "13주", "경구/정맥", "13", 160_000_000, 192_000_000},
	{5, "일반독성", "Rat", "26주", "경구", "26", 285_000_000, -1},
	{6, "일반독성", "Beagle Dog", "39주", "경구", "39", 520_000_000, -1},
	{7, "유전독성", "S. typhimurium", "-", "-", "-", 18_000_000, -1},
	{8, "유전독성", "CHL Cell", "-", "-", "-", 28_000_000, -1},
	{9, "유전독성", "Mouse", "단회", "경구", "1", 30_000_000, -1},
	{10, "생식발생독성", "Rabbit", "GD6-17", "경구", "-", 95_000_000, -1},
	{11, "생식발생독성", "Rat", "GD6~PND21", "경구", "-", 120_000_000, -1},
	{12, "안전성약리", "Beagle Dog", "단회", "경구/정맥", "1", 65_000_000, 72_000_000},
	{13, "국소독성", "Rabbit", "4-9주", "경피", "4-9", 55_000_000, -1},
	{14, "TK분석", "Rat", "3개월", "-", "-", 36_000_000, -1},
	{15, "TK분석", "Rat", "1개월", "-", "-", 24_000_000, -1},
}

var comboItemDefs = []comboItemDef{
	{301, "일반독성(복합제)", "Rat", "13주", 196_000_000, 228_000_000, 260_000_000},
	{302, "일반독성(복합제)", "Rat", "4주", 94_000_000, 112_000_000, 130_000_000},
}

var overlayDefs = []overlayDef{
	// OECD TG 408/409 guideline pricing, primary source.
	{2, "primary", 52_000_000, 62_000_000},
	{4, "primary", 175_000_000, -1},
	{13, "primary", 60_000_000, -1},
	// Secondary guideline source; consulted only when the primary has no
	// entry for the requested route.
	{4, "secondary", 168_000_000, 200_000_000},
	{5, "secondary", 298_000_000, -1},
}

var classificationDefs = []classificationDef{
	{1, 1, true},
	{2, 1, true},
	{3, 1, true},
	{4, 1, true},
	{5, 1, true},
	{6, 1, true},
	{7, 2, false},
	{8, 2, false},
	{9, 1, false},
	{10, 1, true},
	{11, 1, true},
	{12, 1, false},
	{13, 1, true},
	{14, 1, true},
	{15, 1, true},
}

// Seed loads the master data the pricing engine reads: the toxicity-study
// catalog, combination-product tiers, OECD overlay prices and the test-type
// classification table. It is idempotent; an already-seeded database is
// left untouched.
func Seed(app *pocketbase.PocketBase) error {
	itemsCol, err := app.FindCollectionByNameOrId("study_items")
	if err != nil {
		return fmt.Errorf("seed: could not find study_items collection: %w", err)
	}

	existing, err := app.FindAllRecords(itemsCol)
	if err == nil && len(existing) > 0 {
		log.Println("Master data already seeded, skipping.")
		return nil
	}

	combosCol, err := app.FindCollectionByNameOrId("combo_study_items")
	if err != nil {
		return fmt.Errorf("seed: could not find combo_study_items collection: %w", err)
	}
	overlaysCol, err := app.FindCollectionByNameOrId("oecd_overlays")
	if err != nil {
		return fmt.Errorf("seed: could not find oecd_overlays collection: %w", err)
	}
	classificationsCol, err := app.FindCollectionByNameOrId("study_classifications")
	if err != nil {
		return fmt.Errorf("seed: could not find study_classifications collection: %w", err)
	}

	setRoutePrice := func(r *core.Record, flagField, priceField string, price int64) {
		if price < 0 {
			return
		}
		r.Set(flagField, true)
		r.Set(priceField, price)
	}

	for _, d := range studyItemDefs {
		r := core.NewRecord(itemsCol)
		r.Set("item_id", d.itemID)
		r.Set("category", d.category)
		r.Set("species", d.species)
		r.Set("duration", d.duration)
		r.Set("route", d.route)
		r.Set("weeks", d.weeks)
		setRoutePrice(r, "oral_offered", "price_oral", d.priceOral)
		setRoutePrice(r, "iv_offered", "price_iv", d.priceIV)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save study item %d: %w", d.itemID, err)
		}
	}

	for _, d := range comboItemDefs {
		r := core.NewRecord(combosCol)
		r.Set("item_id", d.itemID)
		r.Set("category", d.category)
		r.Set("species", d.species)
		r.Set("duration", d.duration)
		r.Set("price_p2", d.priceP2)
		r.Set("price_p3", d.priceP3)
		r.Set("price_p4", d.priceP4)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save combo item %d: %w", d.itemID, err)
		}
	}

	for _, d := range overlayDefs {
		r := core.NewRecord(overlaysCol)
		r.Set("item_id", d.itemID)
		r.Set("source", d.source)
		setRoutePrice(r, "oral_offered", "price_oral", d.priceOral)
		setRoutePrice(r, "iv_offered", "price_iv", d.priceIV)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save overlay %d/%s: %w", d.itemID, d.source, err)
		}
	}

	for _, d := range classificationDefs {
		r := core.NewRecord(classificationsCol)
		r.Set("item_id", d.itemID)
		r.Set("test_type", d.testType)
		r.Set("content_analysis", d.contentAnalysis)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save classification %d: %w", d.itemID, err)
		}
	}

	log.Printf("Seeded %d study items, %d combo items, %d overlays, %d classifications.\n",
		len(studyItemDefs), len(comboItemDefs), len(overlayDefs), len(classificationDefs))
	return nil
}
