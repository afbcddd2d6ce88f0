// Package catalog loads the product database workbook into typed records
// and serves them from a time-limited cache.
package catalog

import "fmt"

// SelectionType determines how a category's products are picked on the
// order pad.
type SelectionType string

const (
	SelectionSimple  SelectionType = "Simple"
	SelectionNutBolt SelectionType = "NutBolt_Variant"
	SelectionVBelt   SelectionType = "VBelt_Variant"
)

// Variant attribute keys, in resolution order per selection type.
var (
	NutBoltAttributes = []string{"material", "dia", "length_mm"}
	VBeltAttributes   = []string{"section", "size"}
)

// AttributeOrder returns the ordered attribute keys for a variant
// selection type, or nil for simple categories.
func AttributeOrder(st SelectionType) []string {
	switch st {
	case SelectionNutBolt:
		return NutBoltAttributes
	case SelectionVBelt:
		return VBeltAttributes
	}
	return nil
}

// Category is a browsable product grouping.
type Category struct {
	Name          string
	SelectionType SelectionType
}

// Product is a directly orderable catalogue entry.
type Product struct {
	SKU        string
	Name       string
	Category   string
	BaseRate   float64
	StockLevel float64
	Unit       string
	ImageURL   string
}

// Variant is a purchasable SKU identified by a combination of physical
// attributes rather than a single catalogue entry. An attribute absent
// for the row (e.g. length on wire-gauge materials) is stored as "".
type Variant struct {
	SKU        string
	Name       string
	Attrs      map[string]string
	Rate       float64
	StockLevel float64
	Unit       string
}

// Customer is a registered B2B account. The discount is resolved through
// the tier at login time.
type Customer struct {
	ID       string
	Name     string
	TierName string
}

// PriceTier maps a customer class to a fractional discount on base rates.
type PriceTier struct {
	Name     string
	Discount float64
}

// Data is one parsed snapshot of the workbook. It is read-only after
// loading.
type Data struct {
	Categories      []Category
	SimpleProducts  []Product
	NutBoltVariants []Variant
	VBeltVariants   []Variant
	Customers       []Customer
	PriceTiers      []PriceTier
	FeaturedSKUs    []string
}

// CategoryByName returns the category with the given name.
func (d *Data) CategoryByName(name string) (Category, bool) {
	for _, c := range d.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// ProductsByCategory returns the simple products belonging to a category,
// in sheet order.
func (d *Data) ProductsByCategory(category string) []Product {
	var out []Product
	for _, p := range d.SimpleProducts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// VariantsFor returns the variant rows for a selection type.
func (d *Data) VariantsFor(st SelectionType) []Variant {
	switch st {
	case SelectionNutBolt:
		return d.NutBoltVariants
	case SelectionVBelt:
		return d.VBeltVariants
	}
	return nil
}

// FeaturedProducts returns the simple products referenced by the Featured
// sheet, in featured order. Unknown SKUs are skipped.
func (d *Data) FeaturedProducts() []Product {
	bySKU := make(map[string]Product, len(d.SimpleProducts))
	for _, p := range d.SimpleProducts {
		bySKU[p.SKU] = p
	}
	var out []Product
	for _, sku := range d.FeaturedSKUs {
		if p, ok := bySKU[sku]; ok {
			out = append(out, p)
		}
	}
	return out
}

// CustomerByName returns the customer record registered under name.
func (d *Data) CustomerByName(name string) (Customer, bool) {
	for _, c := range d.Customers {
		if c.Name == name {
			return c, true
		}
	}
	return Customer{}, false
}

// TierDiscount resolves a tier name to its discount fraction. A customer
// pointing at a missing tier is a data error surfaced at login.
func (d *Data) TierDiscount(tierName string) (float64, error) {
	for _, t := range d.PriceTiers {
		if t.Name == tierName {
			return t.Discount, nil
		}
	}
	return 0, fmt.Errorf("price tier %q is not defined", tierName)
}

// FindSKU looks up any purchasable SKU, simple or variant. It returns the
// display name, undiscounted rate and unit of sale.
func (d *Data) FindSKU(sku string) (name string, rate float64, unit string, ok bool) {
	for _, p := range d.SimpleProducts {
		if p.SKU == sku {
			return p.Name, p.BaseRate, p.Unit, true
		}
	}
	for _, v := range d.NutBoltVariants {
		if v.SKU == sku {
			return v.Name, v.Rate, v.Unit, true
		}
	}
	for _, v := range d.VBeltVariants {
		if v.SKU == sku {
			return v.Name, v.Rate, v.Unit, true
		}
	}
	return "", 0, "", false
}
