package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CartLineView is one cart row formatted for display.
type CartLineView struct {
	Name       string
	SKU        string
	QtyLabel   string
	PriceLabel string
	TotalLabel string
}

// CartData drives the review-and-submit page.
type CartData struct {
	Header      HeaderData
	Lines       []CartLineView
	TotalLabel  string
	PONumber    string
	Finalized   bool
	WhatsAppURL string
}

// CartPage renders the cart review page and, once finalized, the
// download links and WhatsApp step.
func CartPage(data CartData) templ.Component {
	body := component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Review and Submit Enquiry</h1>
`); err != nil {
			return err
		}
		if len(data.Lines) == 0 {
			_, err := io.WriteString(w, `<p>Your cart is empty. Add items from the Order Pad.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="cart-table">
<thead><tr><th>Name</th><th>SKU</th><th>Quantity</th><th>Price</th><th>Total</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, l := range data.Lines {
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
`, esc(l.Name), esc(l.SKU), esc(l.QtyLabel), esc(l.PriceLabel), esc(l.TotalLabel)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</tbody>
<tfoot><tr><td colspan="4" class="grand-total-label">Grand Total</td><td>%s</td></tr></tfoot>
</table>
`, esc(data.TotalLabel)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form method="post" action="/cart/finalize">
<label>Enter your Purchase Order (PO) Number (Optional)
<input type="text" name="po_number" value="%s">
</label>
<button type="submit" class="primary">Finalize &amp; Prepare Order</button>
</form>
`, esc(data.PONumber)); err != nil {
			return err
		}

		if data.Finalized {
			if _, err := fmt.Fprintf(w, `<section class="checkout-steps">
<p class="form-success">Your order is ready. Please complete the following two steps.</p>
<h2>Step 1: Download Your Order File</h2>
<a class="button" href="/cart/export/excel">Download Order as Excel File</a>
<a class="button" href="/cart/export/pdf">Download Order as PDF</a>
<h2>Step 2: Notify Us on WhatsApp</h2>
<a class="whatsapp-button" href="%s" target="_blank" rel="noopener">Send Order Notification on WhatsApp</a>
</section>
`, esc(data.WhatsAppURL)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<form method="post" action="/cart/clear">
<button type="submit">Clear Cart and Start New Order</button>
</form>
`)
		return err
	})
	return page("Cart", data.Header, body)
}
