package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// LoadMasterData reads the study catalog, OECD overlay tables and the
// test-type classification table into one immutable snapshot. Handlers load
// the snapshot once per request and pass it to the pricing functions, so the
// engine never touches storage.
func LoadMasterData(app *pocketbase.PocketBase) (MasterData, error) {
	md := MasterData{
		Items:            map[int]StudyItem{},
		Combos:           map[int]ComboStudyItem{},
		PrimaryOverlay:   OverlayTable{},
		SecondaryOverlay: OverlayTable{},
		Classifications:  ClassificationTable{},
	}

	items, err := app.FindAllRecords("study_items")
	if err != nil {
		return md, fmt.Errorf("load study_items: %w", err)
	}
	for _, rec := range items {
		item := StudyItem{
			ID:       int(rec.GetFloat("item_id")),
			Category: rec.GetString("category"),
			Species:  rec.GetString("species"),
			Duration: rec.GetString("duration"),
			Route:    rec.GetString("route"),
			Weeks:    rec.GetString("weeks"),
		}
		item.PriceOral = optionalPrice(rec, "oral_offered", "price_oral")
		item.PriceIV = optionalPrice(rec, "iv_offered", "price_iv")
		md.Items[item.ID] = item
	}

	combos, err := app.FindAllRecords("combo_study_items")
	if err != nil {
		return md, fmt.Errorf("load combo_study_items: %w", err)
	}
	for _, rec := range combos {
		combo := ComboStudyItem{
			ID:          int(rec.GetFloat("item_id")),
			Category:    rec.GetString("category"),
			Species:     rec.GetString("species"),
			Duration:    rec.GetString("duration"),
			PricePair:   int64(rec.GetFloat("price_p2")),
			PriceTriple: int64(rec.GetFloat("price_p3")),
			PriceQuad:   int64(rec.GetFloat("price_p4")),
		}
		md.Combos[combo.ID] = combo
	}

	overlays, err := app.FindAllRecords("oecd_overlays")
	if err != nil {
		return md, fmt.Errorf("load oecd_overlays: %w", err)
	}
	for _, rec := range overlays {
		entry := OverlayEntry{
			Oral: optionalPrice(rec, "oral_offered", "price_oral"),
			IV:   optionalPrice(rec, "iv_offered", "price_iv"),
		}
		id := int(rec.GetFloat("item_id"))
		if rec.GetString("source") == "secondary" {
			md.SecondaryOverlay[id] = entry
		} else {
			md.PrimaryOverlay[id] = entry
		}
	}

	classifications, err := app.FindAllRecords("study_classifications")
	if err != nil {
		return md, fmt.Errorf("load study_classifications: %w", err)
	}
	for _, rec := range classifications {
		md.Classifications[int(rec.GetFloat("item_id"))] = Classification{
			TestType:        TestType(rec.GetFloat("test_type")),
			ContentAnalysis: rec.GetBool("content_analysis"),
		}
	}

	return md, nil
}

// optionalPrice maps a presence flag + number field pair to a nullable
// price. Number fields read as 0 when unset, so the flag is what
// distinguishes "free" from "not offered".
func optionalPrice(rec *core.Record, flagField, priceField string) *int64 {
	if !rec.GetBool(flagField) {
		return nil
	}
	v := int64(rec.GetFloat(priceField))
	return &v
}
