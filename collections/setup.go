// Package collections manages the portal's PocketBase collections: the
// credential store consulted at login and the stored account requests.
// The catalogue itself never lives here; it is read from the workbook.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the portal_users and
// account_requests collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "portal_users", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "password", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "account_requests", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "business_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone", Required: true})
		c.Fields.Add(&core.TextField{Name: "gst_number", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "approved", "rejected"},
			MaxSelect: 1,
		})
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
