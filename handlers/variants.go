package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/services"
	"orderportal/templates"
)

// attrLabels maps variant attribute keys to their dropdown labels.
var attrLabels = map[string]string{
	"material":  "Material",
	"dia":       "Diameter",
	"length_mm": "Length (mm)",
	"section":   "Section",
	"size":      "Size",
}

// HandleVariantOptions serves the cascading dropdown fragment. Each
// dropdown change re-requests it with the selections made so far; the
// panel is recomputed from the catalogue on every call.
func HandleVariantOptions(store *catalog.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}

		data, err := store.Get()
		if err != nil {
			log.Printf("variants: catalogue load failed: %v", err)
			return catalogUnavailable(e)
		}

		categoryName := e.Request.URL.Query().Get("category")
		category, found := data.CategoryByName(categoryName)
		if !found || category.SelectionType == catalog.SelectionSimple {
			return e.String(http.StatusBadRequest, "Unknown variant category")
		}

		panel := buildVariantPanel(data, category, e.Request, session.Discount)
		return templates.VariantPanel(panel).Render(e.Request.Context(), e.Response)
	}
}

// buildVariantPanel replays the request's attribute selections through
// a fresh resolver and shapes the result for rendering. Selections
// after the dropdown that triggered the request are stale leftovers
// from the form and are dropped, which resets every dependent choice.
func buildVariantPanel(data *catalog.Data, category catalog.Category, r *http.Request, discount float64) templates.VariantPanelData {
	attrs := catalog.AttributeOrder(category.SelectionType)
	resolver := services.NewVariantResolver(data.VariantsFor(category.SelectionType), attrs)

	query := r.URL.Query()
	changed := r.Header.Get("HX-Trigger-Name")
	for _, attr := range attrs {
		v := query.Get(attr)
		if v != "" && containsOption(resolver.Options(attr), v) {
			if err := resolver.Select(attr, v); err != nil {
				log.Printf("variants: select %s=%q: %v", attr, v, err)
			}
		}
		if attr == changed {
			break
		}
	}

	panel := templates.VariantPanelData{Category: category.Name}
	for _, attr := range attrs {
		options := resolver.Options(attr)
		if len(options) == 0 {
			continue // attribute does not apply to this chain
		}
		selected, _ := resolver.Selected(attr)
		panel.Steps = append(panel.Steps, templates.VariantStep{
			Attr:     attr,
			Label:    attrLabel(attr),
			Options:  options,
			Selected: selected,
		})
		if selected == "" {
			break
		}
	}

	if !resolver.Resolved() {
		return panel
	}

	variant, err := resolver.Resolve()
	switch {
	case errors.Is(err, services.ErrNoVariant):
		panel.Error = "This combination is not available. Please adjust your selection."
		return panel
	case errors.Is(err, services.ErrAmbiguousVariant):
		log.Printf("variants: duplicate rows for category %q selections %v", category.Name, query)
		panel.Error = "Catalogue data problem with this combination. Please contact us."
		return panel
	case err != nil:
		panel.Error = "This combination is not available. Please adjust your selection."
		return panel
	}

	panel.Resolved = &templates.ResolvedVariant{
		SKU:        variant.SKU,
		Name:       variant.Name,
		PriceLabel: services.FormatINR(services.CustomerPrice(variant.Rate, discount)),
		StockLabel: fmt.Sprintf("%s %s", services.FormatQty(variant.StockLevel), variant.Unit),
		Unit:       variant.Unit,
	}
	return panel
}

func attrLabel(attr string) string {
	if l, ok := attrLabels[attr]; ok {
		return l
	}
	return attr
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
