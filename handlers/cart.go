package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/services"
	"orderportal/sessions"
	"orderportal/templates"
)

// HandleCartView renders the review-and-submit page. Once the order is
// finalized it also shows the download links and the WhatsApp step.
func HandleCartView(whatsAppNumber string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}
		return renderCartPage(e, session, whatsAppNumber)
	}
}

func renderCartPage(e *core.RequestEvent, session *sessions.Session, whatsAppNumber string) error {
	var lines []templates.CartLineView
	for _, l := range session.Cart.Lines() {
		lines = append(lines, templates.CartLineView{
			Name:       l.Name,
			SKU:        l.SKU,
			QtyLabel:   services.FormatQty(l.Qty),
			PriceLabel: services.FormatINR(l.UnitPrice),
			TotalLabel: services.FormatINR(l.Total),
		})
	}

	data := templates.CartData{
		Header:     buildHeaderData(session),
		Lines:      lines,
		TotalLabel: services.FormatINR(session.Cart.Total()),
		PONumber:   session.PONumber,
		Finalized:  session.Finalized,
	}
	if session.Finalized {
		export := buildOrderExport(session)
		data.WhatsAppURL = services.WhatsAppLink(whatsAppNumber, services.OrderMessage(export))
	}
	return templates.CartPage(data).Render(e.Request.Context(), e.Response)
}

// HandleCartAdd adds a SKU to the session cart. The unit price is
// always recomputed server-side from the catalogue and the customer's
// discount; prices submitted by the client are ignored.
func HandleCartAdd(store *catalog.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}

		sku := e.Request.FormValue("sku")
		qty, err := strconv.ParseFloat(e.Request.FormValue("qty"), 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quantity")
		}

		data, err := store.Get()
		if err != nil {
			log.Printf("cart_add: catalogue load failed: %v", err)
			return catalogUnavailable(e)
		}

		name, rate, _, found := data.FindSKU(sku)
		if !found {
			log.Printf("cart_add: unknown SKU %q", sku)
			return ErrorToast(e, http.StatusNotFound, "Product not found")
		}

		price := services.CustomerPrice(rate, session.Discount)
		if !session.Cart.Add(sku, name, qty, price) {
			SetToast(e, "warning", "Quantity must be greater than zero")
			return e.String(http.StatusOK, "")
		}

		// A changed cart invalidates a previously prepared order.
		session.Finalized = false

		SetToast(e, "success", fmt.Sprintf("Added '%s' to cart", name))
		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/cart")
	}
}

// HandleCartClear empties the cart and resets the checkout state. The
// portal has no per-line removal; clearing is the only way back.
func HandleCartClear() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}

		session.Cart.Clear()
		session.PONumber = ""
		session.Finalized = false

		SetToast(e, "success", "Cart cleared")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/cart")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/cart")
	}
}
