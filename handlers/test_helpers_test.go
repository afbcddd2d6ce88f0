package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/services"
	"orderportal/sessions"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestSession returns a standalone logged-in session for the gold
// tier demo customer.
func newTestSession() *sessions.Session {
	return &sessions.Session{
		Customer: catalog.Customer{ID: "C002", Name: "Verma Traders", TierName: "Gold"},
		Discount: 0.12,
		Cart:     services.NewCart(),
	}
}

// attachSession binds a session to the request context the way
// SessionMiddleware does.
func attachSession(req *http.Request, s *sessions.Session) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), sessionKey, s))
}

// newFormRequest builds a POST request carrying url-encoded form values.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
