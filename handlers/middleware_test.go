package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orderportal/catalog"
	"orderportal/sessions"
	"orderportal/testhelpers"
)

func TestGetSession_FromContext(t *testing.T) {
	s := newTestSession()
	req := attachSession(httptest.NewRequest(http.MethodGet, "/", nil), s)

	got := GetSession(req)
	if got != s {
		t.Errorf("GetSession() = %v, want the attached session", got)
	}
}

func TestGetSession_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetSession(req); got != nil {
		t.Errorf("GetSession() = %v, want nil", got)
	}
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	mgr := sessions.NewManager()
	id, want := mgr.Create(catalog.Customer{Name: "Sharma Hardware", TierName: "Standard"}, 0.05)

	middleware := SessionMiddleware(mgr)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: id})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_ = middleware(e)

	got := GetSession(e.Request)
	if got != want {
		t.Errorf("session not resolved from cookie: got %v", got)
	}
}

func TestSessionMiddleware_UnknownCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	middleware := SessionMiddleware(sessions.NewManager())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: "stale-session-id"})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_ = middleware(e)

	if GetSession(e.Request) != nil {
		t.Error("expected no session for an unknown cookie")
	}
}

func TestSessionMiddleware_NoCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	middleware := SessionMiddleware(sessions.NewManager())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_ = middleware(e)

	if GetSession(e.Request) != nil {
		t.Error("expected no session without a cookie")
	}
}

func TestRequireSession_RedirectsAnonymous(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_, ok := requireSession(e)
	if ok {
		t.Fatal("requireSession() = true for anonymous request")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireSession_HXRedirectForHTMX(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_, ok := requireSession(e)
	if ok {
		t.Fatal("requireSession() = true for anonymous HTMX request")
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/login")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireSession_PassesThroughLoggedIn(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	s := newTestSession()

	req := attachSession(httptest.NewRequest(http.MethodGet, "/cart", nil), s)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	got, ok := requireSession(e)
	if !ok || got != s {
		t.Errorf("requireSession() = %v, %v; want the session", got, ok)
	}
}

func TestBuildHeaderData(t *testing.T) {
	s := newTestSession()
	s.Cart.Add("BRG-6204", "Ball Bearing 6204", 2, 88)

	header := buildHeaderData(s)
	if header.CustomerName != "Verma Traders" {
		t.Errorf("customer = %q", header.CustomerName)
	}
	if header.TierName != "Gold" {
		t.Errorf("tier = %q", header.TierName)
	}
	if header.DiscountLabel != "12%" {
		t.Errorf("discount label = %q, want 12%%", header.DiscountLabel)
	}
	if header.CartCount != 1 {
		t.Errorf("cart count = %d, want 1", header.CartCount)
	}
	if header.CartTotal != "₹176.00" {
		t.Errorf("cart total = %q, want ₹176.00", header.CartTotal)
	}
}
