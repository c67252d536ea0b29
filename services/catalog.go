// Package services holds the pricing engine: pure functions over immutable
// master-data snapshots. Nothing in this package touches storage or HTTP;
// handlers load a MasterData snapshot and pass it in.
package services

import "fmt"

// Route is an administration route a study can be priced for.
type Route string

const (
	RouteOral Route = "oral"
	RouteIV   Route = "iv"
)

// ParseRoute validates a route received from a form or import file.
func ParseRoute(s string) (Route, error) {
	switch Route(s) {
	case RouteOral, RouteIV:
		return Route(s), nil
	}
	return "", fmt.Errorf("unknown route %q", s)
}

// PricingMode selects which price table applies to a quotation.
type PricingMode string

const (
	PricingStandard     PricingMode = "standard"
	PricingOECDAdjusted PricingMode = "oecd"
)

// ParsePricingMode validates a pricing mode received from a form.
func ParsePricingMode(s string) (PricingMode, error) {
	switch PricingMode(s) {
	case PricingStandard, PricingOECDAdjusted:
		return PricingMode(s), nil
	}
	return "", fmt.Errorf("unknown pricing mode %q", s)
}

// FormulationCategory is the product category of a quotation. It selects
// which formulation surcharge formula applies and is set once per
// quotation, never per line.
type FormulationCategory string

const (
	CategoryDrugSingle   FormulationCategory = "drug_single"
	CategoryDrugCombo    FormulationCategory = "drug_combo"
	CategoryDrugVaccine  FormulationCategory = "drug_vaccine"
	CategoryHFIndividual FormulationCategory = "hf_indv"
	CategoryHFProbiotic  FormulationCategory = "hf_prob"
	CategoryMDBio        FormulationCategory = "md_bio"
)

// FormulationCategories lists every valid category in display order.
var FormulationCategories = []FormulationCategory{
	CategoryDrugSingle,
	CategoryDrugCombo,
	CategoryDrugVaccine,
	CategoryHFIndividual,
	CategoryHFProbiotic,
	CategoryMDBio,
}

// ParseFormulationCategory validates a category received from a form.
func ParseFormulationCategory(s string) (FormulationCategory, error) {
	for _, c := range FormulationCategories {
		if FormulationCategory(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown formulation category %q", s)
}

// Label returns the Korean display name of the category.
func (c FormulationCategory) Label() string {
	switch c {
	case CategoryDrugSingle:
		return "의약품 (단일제)"
	case CategoryDrugCombo:
		return "의약품 (복합제)"
	case CategoryDrugVaccine:
		return "백신"
	case CategoryHFIndividual:
		return "건강기능식품 (개별인정형)"
	case CategoryHFProbiotic:
		return "건강기능식품 (프로바이오틱스)"
	case CategoryMDBio:
		return "의료기기 (생물학적 안전성)"
	}
	return string(c)
}

// TestType classifies a study as in-vivo or in-vitro for the assay
// validation surcharge.
type TestType int

const (
	TestTypeInVivo  TestType = 1
	TestTypeInVitro TestType = 2
)

// StudyItem is one entry of the single-substance study catalog. Route
// prices are nil when the catalog does not offer the item for that route;
// a zero price and an absent price are different things.
type StudyItem struct {
	ID       int
	Category string
	Species  string
	Duration string
	Route    string
	Weeks    string

	PriceOral *int64
	PriceIV   *int64
}

func (i StudyItem) basePrice(route Route) *int64 {
	if route == RouteIV {
		return i.PriceIV
	}
	return i.PriceOral
}

// ComboStudyItem is a combination study priced by component count.
type ComboStudyItem struct {
	ID       int
	Category string
	Species  string
	Duration string

	PricePair   int64
	PriceTriple int64
	PriceQuad   int64
}

// OverlayEntry is one item's OECD-adjusted price override. A nil route
// means the overlay has nothing to say about that route and resolution
// falls through to the next source.
type OverlayEntry struct {
	Oral *int64
	IV   *int64
}

func (e OverlayEntry) price(route Route) *int64 {
	if route == RouteIV {
		return e.IV
	}
	return e.Oral
}

// OverlayTable maps item IDs to OECD overlay entries.
type OverlayTable map[int]OverlayEntry

func (t OverlayTable) price(id int, route Route) *int64 {
	entry, ok := t[id]
	if !ok {
		return nil
	}
	return entry.price(route)
}

// Classification records the test type and content-analysis flag of a
// catalog item, keyed by item ID in a ClassificationTable.
type Classification struct {
	TestType        TestType
	ContentAnalysis bool
}

// ClassificationTable maps item IDs to their classifications.
type ClassificationTable map[int]Classification

// SelectedLine is one study chosen on a quotation, with the price it was
// resolved at when added. Option lines sit outside the primary numbering
// but still count toward every total.
type SelectedLine struct {
	ID       string
	ItemID   int
	Name     string
	Category string
	Price    int64
	IsOption bool
}

// MasterData is an immutable snapshot of the catalog, overlay and
// classification tables.
type MasterData struct {
	Items            map[int]StudyItem
	Combos           map[int]ComboStudyItem
	PrimaryOverlay   OverlayTable
	SecondaryOverlay OverlayTable
	Classifications  ClassificationTable
}
