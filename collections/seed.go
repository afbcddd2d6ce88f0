package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type userDef struct {
	customerName string
	password     string
}

// Demo credentials matching the sample workbook's Customers sheet.
// Replaced by real accounts as approval requests come in.
var demoUsers = []userDef{
	{customerName: "Sharma Hardware", password: "sharma123"},
	{customerName: "Verma Traders", password: "verma123"},
}

// Seed inserts demo portal users when the credential store is empty so
// a fresh checkout of the portal is immediately usable.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("portal_users")
	if err != nil {
		return fmt.Errorf("portal_users collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("could not query portal_users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, u := range demoUsers {
		record := core.NewRecord(col)
		record.Set("customer_name", u.customerName)
		record.Set("password", u.password)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.customerName, err)
		}
	}
	return nil
}
