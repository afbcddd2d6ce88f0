package catalog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names. The portal refuses to start a session on a
// workbook missing any of them.
const (
	sheetCategories = "Categories"
	sheetProducts   = "SimpleProducts"
	sheetNutBolts   = "NutBolt_Variants"
	sheetVBelts     = "VBelt_Variants"
	sheetCustomers  = "Customers"
	sheetPriceTiers = "PriceTiers"
	sheetFeatured   = "Featured"
)

// LoadFile parses the workbook at path into a Data snapshot.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a workbook from r. Any missing sheet or column is an
// error; no partial catalogue is ever returned.
func Load(r io.Reader) (*Data, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	data := &Data{}

	err = forEachRow(wb, sheetCategories, []string{"category_name", "selection_type"}, func(row sheetRow) error {
		st := SelectionType(row.get("selection_type"))
		switch st {
		case SelectionSimple, SelectionNutBolt, SelectionVBelt:
		default:
			return fmt.Errorf("sheet %s row %d: unknown selection_type %q", row.sheet, row.num, st)
		}
		data.Categories = append(data.Categories, Category{
			Name:          row.get("category_name"),
			SelectionType: st,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = forEachRow(wb, sheetProducts,
		[]string{"product_sku", "product_name", "category_name", "base_rate", "stock_level", "base_units"},
		func(row sheetRow) error {
			rate, err := row.getFloat("base_rate")
			if err != nil {
				return err
			}
			stock, err := row.getFloat("stock_level")
			if err != nil {
				return err
			}
			data.SimpleProducts = append(data.SimpleProducts, Product{
				SKU:        row.get("product_sku"),
				Name:       row.get("product_name"),
				Category:   row.get("category_name"),
				BaseRate:   rate,
				StockLevel: stock,
				Unit:       row.get("base_units"),
				ImageURL:   row.get("image_url"), // optional column
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachRow(wb, sheetNutBolts,
		[]string{"product_sku", "material", "dia", "rate", "stock_level", "base_units"},
		func(row sheetRow) error {
			rate, err := row.getFloat("rate")
			if err != nil {
				return err
			}
			stock, err := row.getFloat("stock_level")
			if err != nil {
				return err
			}
			attrs := map[string]string{
				"material":  row.get("material"),
				"dia":       row.get("dia"),
				"length_mm": row.get("length_mm"), // empty for two-level materials
			}
			data.NutBoltVariants = append(data.NutBoltVariants, Variant{
				SKU:        row.get("product_sku"),
				Name:       nutBoltName(attrs),
				Attrs:      attrs,
				Rate:       rate,
				StockLevel: stock,
				Unit:       row.get("base_units"),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachRow(wb, sheetVBelts,
		[]string{"product_sku", "section", "size", "rate", "stock_level", "base_units"},
		func(row sheetRow) error {
			rate, err := row.getFloat("rate")
			if err != nil {
				return err
			}
			stock, err := row.getFloat("stock_level")
			if err != nil {
				return err
			}
			attrs := map[string]string{
				"section": row.get("section"),
				"size":    row.get("size"),
			}
			data.VBeltVariants = append(data.VBeltVariants, Variant{
				SKU:        row.get("product_sku"),
				Name:       fmt.Sprintf("V-Belt %s-%s", attrs["section"], attrs["size"]),
				Attrs:      attrs,
				Rate:       rate,
				StockLevel: stock,
				Unit:       row.get("base_units"),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachRow(wb, sheetCustomers,
		[]string{"customer_id", "customer_name", "price_tier_name"},
		func(row sheetRow) error {
			data.Customers = append(data.Customers, Customer{
				ID:       row.get("customer_id"),
				Name:     row.get("customer_name"),
				TierName: row.get("price_tier_name"),
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachRow(wb, sheetPriceTiers,
		[]string{"tier_name", "discount_percentage"},
		func(row sheetRow) error {
			discount, err := row.getFloat("discount_percentage")
			if err != nil {
				return err
			}
			if discount < 0 || discount >= 1 {
				return fmt.Errorf("sheet %s row %d: discount_percentage %v out of range [0,1)", row.sheet, row.num, discount)
			}
			data.PriceTiers = append(data.PriceTiers, PriceTier{
				Name:     row.get("tier_name"),
				Discount: discount,
			})
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = forEachRow(wb, sheetFeatured, []string{"product_sku"}, func(row sheetRow) error {
		data.FeaturedSKUs = append(data.FeaturedSKUs, row.get("product_sku"))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// nutBoltName builds a display name from the attribute tuple. Two-level
// materials have no length component.
func nutBoltName(attrs map[string]string) string {
	if attrs["length_mm"] == "" {
		return fmt.Sprintf("%s Nut Bolt %s", attrs["material"], attrs["dia"])
	}
	return fmt.Sprintf("%s Nut Bolt %s x %smm", attrs["material"], attrs["dia"], attrs["length_mm"])
}

// sheetRow gives column access by header name for one data row.
type sheetRow struct {
	sheet string
	num   int // 1-based workbook row number
	cols  map[string]int
	cells []string
}

func (r sheetRow) get(col string) string {
	idx, ok := r.cols[col]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

func (r sheetRow) getFloat(col string) (float64, error) {
	raw := r.get(col)
	if raw == "" {
		return 0, fmt.Errorf("sheet %s row %d: column %q is empty", r.sheet, r.num, col)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("sheet %s row %d: column %q: %w", r.sheet, r.num, col, err)
	}
	return v, nil
}

// forEachRow reads a sheet, validates that every required column is
// present in the header row, and invokes fn once per non-empty data row.
func forEachRow(wb *excelize.File, sheet string, required []string, fn func(sheetRow) error) error {
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %q has no header row", sheet)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return fmt.Errorf("sheet %q is missing column %q", sheet, col)
		}
	}

	for i, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		if err := fn(sheetRow{sheet: sheet, num: i + 2, cols: cols, cells: cells}); err != nil {
			return err
		}
	}
	return nil
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
