// Package templates renders the portal's HTML. Components implement
// templ.Component so handlers can render pages and HTMX fragments the
// same way.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// HeaderData drives the shell: who is logged in, their tier, and the
// running order summary shown on every page.
type HeaderData struct {
	CustomerName  string
	TierName      string
	DiscountLabel string
	CartCount     int
	CartTotal     string
}

func esc(s string) string {
	return html.EscapeString(s)
}

// component wraps a render func as a templ.Component.
func component(fn func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return fn(w)
	})
}

// page renders the full document shell around a body component.
func page(title string, header HeaderData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - Ahirwal Trading Portal</title>
<script src="https://unpkg.com/htmx.org@1.9.12" crossorigin="anonymous"></script>
<link rel="stylesheet" href="/static/portal.css">
</head>
<body>
`, esc(title)); err != nil {
			return err
		}
		if err := renderHeader(w, header); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="content">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toast-container"></div>
<script src="/static/toast.js"></script>
</body>
</html>
`)
		return err
	})
}

func renderHeader(w io.Writer, h HeaderData) error {
	_, err := fmt.Fprintf(w, `<header class="portal-header">
<div class="brand">Ahirwal Trading</div>
<nav>
<a href="/">Home</a>
<a href="/order">Order Pad</a>
<a href="/cart">Cart (%d)</a>
</nav>
<div class="account">
<span class="customer">%s</span>
<span class="tier">Tier: %s</span>
<span class="discount">Discount: %s</span>
<span class="order-total">Order Total: %s</span>
<form method="post" action="/logout"><button type="submit">Logout</button></form>
</div>
</header>
`, h.CartCount, esc(h.CustomerName), esc(h.TierName), esc(h.DiscountLabel), esc(h.CartTotal))
	return err
}

// ErrorPage is the fatal-error page, used when the catalogue cannot be
// loaded.
func ErrorPage(message string) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Ahirwal Trading Portal</title></head>
<body>
<main class="error-page">
<h1>Something went wrong</h1>
<p>%s</p>
</main>
</body>
</html>
`, esc(message))
		return err
	})
}
