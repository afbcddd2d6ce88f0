package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"orderportal/services"
	"orderportal/sessions"
	"orderportal/templates"
)

type contextKey string

const sessionKey contextKey = "portalSession"

// GetSession extracts the login session from the request context, or
// nil when the request is unauthenticated.
func GetSession(r *http.Request) *sessions.Session {
	if s, ok := r.Context().Value(sessionKey).(*sessions.Session); ok {
		return s
	}
	return nil
}

// SessionMiddleware resolves the session cookie against the manager and
// stores the session in the request context. Requests without a valid
// cookie pass through unauthenticated; the login gate is per-handler.
func SessionMiddleware(mgr *sessions.Manager) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(sessions.CookieName)
		if err == nil && cookie.Value != "" {
			if s, ok := mgr.Get(cookie.Value); ok {
				ctx := context.WithValue(e.Request.Context(), sessionKey, s)
				e.Request = e.Request.WithContext(ctx)
			}
		}
		return e.Next()
	}
}

// requireSession returns the active session or redirects to the login
// page (via HX-Redirect for HTMX requests). Handlers for every page
// behind the login call this first.
func requireSession(e *core.RequestEvent) (*sessions.Session, bool) {
	s := GetSession(e.Request)
	if s != nil {
		return s, true
	}
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", "/login")
		e.String(http.StatusUnauthorized, "")
		return nil, false
	}
	e.Redirect(http.StatusFound, "/login")
	return nil, false
}

// buildHeaderData assembles the shell header from the session: customer
// identity, tier, and the running order summary.
func buildHeaderData(s *sessions.Session) templates.HeaderData {
	return templates.HeaderData{
		CustomerName:  s.Customer.Name,
		TierName:      s.Customer.TierName,
		DiscountLabel: services.FormatDiscount(s.Discount),
		CartCount:     s.Cart.Len(),
		CartTotal:     services.FormatINR(s.Cart.Total()),
	}
}
