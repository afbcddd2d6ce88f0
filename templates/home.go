package templates

import (
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// CategoryCard is one tile on the shop-by-category grid.
type CategoryCard struct {
	Name string
}

// ProductCard is a simple product with the customer's price applied.
type ProductCard struct {
	SKU        string
	Name       string
	PriceLabel string
	StockLabel string
	ImageURL   string
}

// HomeData drives the dashboard page.
type HomeData struct {
	Header     HeaderData
	Categories []CategoryCard
	Featured   []ProductCard
}

// HomePage renders the dashboard: category grid plus featured products.
func HomePage(data HomeData) templ.Component {
	body := component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Dashboard</h1>
<p>Welcome back, %s.</p>
<h2>Shop by Category</h2>
<div class="category-grid">
`, esc(data.Header.CustomerName)); err != nil {
			return err
		}
		for _, c := range data.Categories {
			if _, err := fmt.Fprintf(w, `<div class="category-card">
<h3>%s</h3>
<a class="button" href="/order?category=%s">Browse</a>
</div>
`, esc(c.Name), url.QueryEscape(c.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>
<h2>Featured Products</h2>
<div class="product-grid">
`); err != nil {
			return err
		}
		for _, p := range data.Featured {
			if err := renderProductCard(w, p); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>
`)
		return err
	})
	return page("Home", data.Header, body)
}

// renderProductCard writes one product tile with an add-to-cart form.
func renderProductCard(w io.Writer, p ProductCard) error {
	if _, err := fmt.Fprintf(w, `<div class="product-container">
`); err != nil {
		return err
	}
	if p.ImageURL != "" {
		if _, err := fmt.Fprintf(w, `<img class="product-image" src="%s" alt="%s">
`, esc(p.ImageURL), esc(p.Name)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `<h3>%s</h3>
<p class="sku">SKU: %s</p>
<p class="stock">In Stock: %s</p>
<p class="price">Your Price: <strong>%s</strong></p>
<form hx-post="/cart/items" hx-swap="none">
<input type="hidden" name="sku" value="%s">
<input type="number" name="qty" value="1" min="1" step="any">
<button type="submit">Add to Cart</button>
</form>
</div>
`, esc(p.Name), esc(p.SKU), esc(p.StockLabel), esc(p.PriceLabel), esc(p.SKU))
	return err
}
