package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/templates"
)

// HandleOrderPad renders the order pad: the category selector plus the
// panel for the currently selected category.
func HandleOrderPad(store *catalog.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}

		data, err := store.Get()
		if err != nil {
			log.Printf("orderpad: catalogue load failed: %v", err)
			return catalogUnavailable(e)
		}

		names := make([]string, 0, len(data.Categories))
		for _, c := range data.Categories {
			names = append(names, c.Name)
		}

		selected := e.Request.URL.Query().Get("category")
		var panel templ.Component
		if selected != "" {
			category, found := data.CategoryByName(selected)
			if !found {
				selected = ""
			} else if category.SelectionType == catalog.SelectionSimple {
				var cards []templates.ProductCard
				for _, p := range data.ProductsByCategory(category.Name) {
					cards = append(cards, productCard(p, session.Discount))
				}
				panel = templates.SimpleProductList(cards)
			} else {
				panel = templates.VariantPanel(buildVariantPanel(data, category, e.Request, session.Discount))
			}
		}

		return templates.OrderPadPage(templates.OrderPadData{
			Header:     buildHeaderData(session),
			Categories: names,
			Selected:   selected,
		}, panel).Render(e.Request.Context(), e.Response)
	}
}
