package handlers

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/services"
	"orderportal/templates"
)

// HandleHome renders the dashboard: the category grid plus the featured
// products priced for the logged-in customer.
func HandleHome(store *catalog.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}

		data, err := store.Get()
		if err != nil {
			log.Printf("home: catalogue load failed: %v", err)
			return catalogUnavailable(e)
		}

		cards := make([]templates.CategoryCard, 0, len(data.Categories))
		for _, c := range data.Categories {
			cards = append(cards, templates.CategoryCard{Name: c.Name})
		}

		var featured []templates.ProductCard
		for _, p := range data.FeaturedProducts() {
			featured = append(featured, productCard(p, session.Discount))
		}

		return templates.HomePage(templates.HomeData{
			Header:     buildHeaderData(session),
			Categories: cards,
			Featured:   featured,
		}).Render(e.Request.Context(), e.Response)
	}
}

// productCard formats a simple product with the customer's discounted
// price for display.
func productCard(p catalog.Product, discount float64) templates.ProductCard {
	return templates.ProductCard{
		SKU:        p.SKU,
		Name:       p.Name,
		PriceLabel: services.FormatINR(services.CustomerPrice(p.BaseRate, discount)),
		StockLabel: fmt.Sprintf("%s %s", services.FormatQty(p.StockLevel), p.Unit),
		ImageURL:   p.ImageURL,
	}
}
