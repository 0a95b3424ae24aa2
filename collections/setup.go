package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the equipment and projects
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "equipment", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "dealer_usd", Required: true})
		c.Fields.Add(&core.NumberField{Name: "client_usd", Required: false})
		c.Fields.Add(&core.NumberField{Name: "msrp_usd", Required: false})
		c.Fields.Add(&core.NumberField{Name: "weight", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"void", "accessory"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "is_active"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "project_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.JSONField{Name: "equipment"})
		c.Fields.Add(&core.JSONField{Name: "custom_equipment"})
		c.Fields.Add(&core.JSONField{Name: "services"})
		c.Fields.Add(&core.JSONField{Name: "custom_services"})
		c.Fields.Add(&core.JSONField{Name: "roles"})
		c.Fields.Add(&core.NumberField{Name: "global_discount"})
		c.Fields.Add(&core.JSONField{Name: "calculation_result", MaxSize: 2 << 20})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
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
