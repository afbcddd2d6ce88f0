package collections_test

import (
	"testing"

	"orderportal/collections"
	"orderportal/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"portal_users",
	"account_requests",
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
			t.Errorf("collection %q was recreated: id %q -> %q", name, ids[name], col.Id)
		}
	}
}

func TestSetup_PortalUsersFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("portal_users")
	if err != nil {
		t.Fatalf("portal_users not found: %v", err)
	}

	for _, field := range []string{"customer_name", "password", "created", "updated"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("portal_users missing field %q", field)
		}
	}
}

func TestSetup_AccountRequestStatusValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("account_requests")
	if err != nil {
		t.Fatalf("account_requests not found: %v", err)
	}

	field, ok := col.Fields.GetByName("status").(*core.SelectField)
	if !ok {
		t.Fatal("status is not a select field")
	}

	want := map[string]bool{"pending": true, "approved": true, "rejected": true}
	if len(field.Values) != len(want) {
		t.Errorf("status values = %v", field.Values)
	}
	for _, v := range field.Values {
		if !want[v] {
			t.Errorf("unexpected status value %q", v)
		}
	}
}
