package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// OrderPadData drives the order pad page.
type OrderPadData struct {
	Header     HeaderData
	Categories []string
	Selected   string
}

// VariantStep is one dropdown in the cascading attribute selection.
type VariantStep struct {
	Attr     string // query key, e.g. "material"
	Label    string // display label, e.g. "Material"
	Options  []string
	Selected string // "" while unchosen
}

// ResolvedVariant is the single row the resolver narrowed down to,
// ready to add to the cart.
type ResolvedVariant struct {
	SKU        string
	Name       string
	PriceLabel string
	StockLabel string
	Unit       string
}

// VariantPanelData drives the variant picker fragment.
type VariantPanelData struct {
	Category string
	Steps    []VariantStep
	Resolved *ResolvedVariant
	Error    string
}

// OrderPadPage renders the category selector with the current
// category's panel inlined. panel may be nil when no category is
// selected yet.
func OrderPadPage(data OrderPadData, panel templ.Component) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Order Pad</h1>
<form method="get" action="/order">
<label>Select a Product Category
<select name="category" onchange="this.form.submit()">
<option value="">Choose a category to begin...</option>
`); err != nil {
			return err
		}
		for _, c := range data.Categories {
			selected := ""
			if c == data.Selected {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(c), selected, esc(c)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
</label>
</form>
<div id="category-panel">
`); err != nil {
			return err
		}
		if panel != nil {
			if err := panel.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>
`)
		return err
	})
	return page("Order Pad", data.Header, body)
}

// SimpleProductList renders the product rows of a simple category.
func SimpleProductList(products []ProductCard) templ.Component {
	return component(func(w io.Writer) error {
		if len(products) == 0 {
			_, err := io.WriteString(w, `<p>No products in this category yet.</p>`)
			return err
		}
		for _, p := range products {
			if err := renderProductCard(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// VariantPanel renders the cascading dropdowns for a variant category.
// Every change re-requests the fragment with the selections so far; the
// server recomputes the remaining options from scratch.
func VariantPanel(data VariantPanelData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form class="variant-picker">
<input type="hidden" name="category" value="%s">
`, esc(data.Category)); err != nil {
			return err
		}
		for _, step := range data.Steps {
			if _, err := fmt.Fprintf(w, `<label>%s
<select name="%s" hx-get="/order/variants" hx-target="#category-panel" hx-include="closest form">
<option value="">Select %s...</option>
`, esc(step.Label), esc(step.Attr), esc(step.Label)); err != nil {
				return err
			}
			for _, opt := range step.Options {
				selected := ""
				if opt == step.Selected {
					selected = " selected"
				}
				if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(opt), selected, esc(opt)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</select>
</label>
`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</form>
`); err != nil {
			return err
		}

		if data.Error != "" {
			_, err := fmt.Fprintf(w, `<p class="form-error">%s</p>
`, esc(data.Error))
			return err
		}
		if data.Resolved != nil {
			r := data.Resolved
			_, err := fmt.Fprintf(w, `<div class="product-container resolved-variant">
<h3>%s</h3>
<p class="sku">SKU: %s</p>
<p class="stock">In Stock: %s</p>
<p class="price">Your Price: <strong>%s</strong> per %s</p>
<form hx-post="/cart/items" hx-swap="none">
<input type="hidden" name="sku" value="%s">
<input type="number" name="qty" value="1" min="1" step="any">
<button type="submit">Add to Cart</button>
</form>
</div>
`, esc(r.Name), esc(r.SKU), esc(r.StockLabel), esc(r.PriceLabel), esc(r.Unit), esc(r.SKU))
			return err
		}
		return nil
	})
}
