package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures all collections: the customer and
// quotation tables plus the read-only master-data tables consumed by the
// pricing engine (study catalog, OECD overlays, test-type classification).
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "code", Required: false})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "pricing_mode",
			Required:  true,
			Values:    []string{"standard", "oecd"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"drug_single", "drug_combo", "drug_vaccine", "hf_indv", "hf_prob", "md_bio"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "discount_percent", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.NumberField{Name: "item_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		// Empty for combination lines, which are not route-priced.
		c.Fields.Add(&core.TextField{Name: "route", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_option"})
	})

	ensureCollection(app, "study_items", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "item_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "species", Required: false})
		c.Fields.Add(&core.TextField{Name: "duration", Required: false})
		c.Fields.Add(&core.TextField{Name: "route", Required: false})
		c.Fields.Add(&core.TextField{Name: "weeks", Required: false})
		// Number fields read as 0 when unset, so each route price carries a
		// presence flag to keep "not offered" distinct from "free".
		c.Fields.Add(&core.BoolField{Name: "oral_offered"})
		c.Fields.Add(&core.NumberField{Name: "price_oral", Required: false})
		c.Fields.Add(&core.BoolField{Name: "iv_offered"})
		c.Fields.Add(&core.NumberField{Name: "price_iv", Required: false})
	})

	ensureCollection(app, "combo_study_items", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "item_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "species", Required: false})
		c.Fields.Add(&core.TextField{Name: "duration", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price_p2", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price_p3", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price_p4", Required: true})
	})

	ensureCollection(app, "oecd_overlays", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "item_id", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "source",
			Required:  true,
			Values:    []string{"primary", "secondary"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "oral_offered"})
		c.Fields.Add(&core.NumberField{Name: "price_oral", Required: false})
		c.Fields.Add(&core.BoolField{Name: "iv_offered"})
		c.Fields.Add(&core.NumberField{Name: "price_iv", Required: false})
	})

	ensureCollection(app, "study_classifications", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "item_id", Required: true})
		c.Fields.Add(&core.NumberField{Name: "test_type", Required: true}) // 1 = in-vivo, 2 = in-vitro
		c.Fields.Add(&core.BoolField{Name: "content_analysis"})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
