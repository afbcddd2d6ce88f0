// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"

	"orderportal/catalog"
	"orderportal/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestUser creates a portal_users record and returns it.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, customerName, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("portal_users")
	if err != nil {
		t.Fatalf("failed to find portal_users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("password", password)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// CreateTestAccountRequest creates a pending account_requests record.
func CreateTestAccountRequest(t *testing.T, app *pocketbase.PocketBase, businessName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("account_requests")
	if err != nil {
		t.Fatalf("failed to find account_requests collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("business_name", businessName)
	record.Set("contact_person", "Test Person")
	record.Set("phone", "9876543210")
	record.Set("gst_number", "27AADCB2230M1ZV")
	record.Set("status", "pending")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test account request: %v", err)
	}

	return record
}

// WriteTestWorkbook writes a small but complete catalogue workbook into a
// temporary directory and returns its path. The fixture covers all three
// selection types, including a two-level nut-bolt material with no length
// attribute.
func WriteTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	writeSheet(t, f, "Categories", [][]any{
		{"category_name", "selection_type"},
		{"Bearings", "Simple"},
		{"Nuts & Bolts", "NutBolt_Variant"},
		{"V-Belts", "VBelt_Variant"},
	})
	writeSheet(t, f, "SimpleProducts", [][]any{
		{"product_sku", "product_name", "category_name", "base_rate", "stock_level", "base_units"},
		{"BRG-6204", "Ball Bearing 6204", "Bearings", 100.0, 50.0, "Pcs"},
		{"BRG-6305", "Ball Bearing 6305", "Bearings", 250.0, 20.0, "Pcs"},
	})
	writeSheet(t, f, "NutBolt_Variants", [][]any{
		{"product_sku", "material", "dia", "length_mm", "rate", "stock_level", "base_units"},
		{"NB-MS-M8-25", "MS", "M8", "25", 2.5, 1000.0, "Pcs"},
		{"NB-MS-M8-50", "MS", "M8", "50", 3.0, 800.0, "Pcs"},
		{"NB-MS-M10-50", "MS", "M10", "50", 4.5, 600.0, "Pcs"},
		{"NB-SS-M8-25", "SS", "M8", "25", 6.0, 400.0, "Pcs"},
		{"NB-GI-8G", "GI", "8G", "", 1.8, 5000.0, "Kg"},
		{"NB-GI-10G", "GI", "10G", "", 1.5, 5000.0, "Kg"},
	})
	writeSheet(t, f, "VBelt_Variants", [][]any{
		{"product_sku", "section", "size", "rate", "stock_level", "base_units"},
		{"VB-A-32", "A", "32", 85.0, 60.0, "Pcs"},
		{"VB-A-34", "A", "34", 90.0, 40.0, "Pcs"},
		{"VB-B-32", "B", "32", 120.0, 30.0, "Pcs"},
	})
	writeSheet(t, f, "Customers", [][]any{
		{"customer_id", "customer_name", "price_tier_name"},
		{"C001", "Sharma Hardware", "Standard"},
		{"C002", "Verma Traders", "Gold"},
	})
	writeSheet(t, f, "PriceTiers", [][]any{
		{"tier_name", "discount_percentage"},
		{"Standard", 0.05},
		{"Gold", 0.12},
	})
	writeSheet(t, f, "Featured", [][]any{
		{"product_sku"},
		{"BRG-6204"},
	})

	f.DeleteSheet("Sheet1")

	path := filepath.Join(t.TempDir(), "catalogue.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save test workbook: %v", err)
	}
	return path
}

func writeSheet(t *testing.T, f *excelize.File, name string, rows [][]any) {
	t.Helper()

	if _, err := f.NewSheet(name); err != nil {
		t.Fatalf("failed to create sheet %s: %v", name, err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			t.Fatalf("failed to write row %d of sheet %s: %v", i+1, name, err)
		}
	}
}

// NewTestStore returns a catalogue store over the fixture workbook.
func NewTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore(WriteTestWorkbook(t), time.Minute)
}

// LoadTestData parses the fixture workbook directly, bypassing the store.
func LoadTestData(t *testing.T) *catalog.Data {
	t.Helper()

	data, err := catalog.LoadFile(WriteTestWorkbook(t))
	if err != nil {
		t.Fatalf("failed to load test workbook: %v", err)
	}
	return data
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
