package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"orderportal/catalog"
	"orderportal/sessions"
	"orderportal/templates"
)

// HandleLoginPage renders the login form. Logged-in customers are sent
// straight to the dashboard.
func HandleLoginPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if GetSession(e.Request) != nil {
			return e.Redirect(http.StatusFound, "/")
		}
		return templates.LoginPage(templates.LoginData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin checks the submitted credentials against the portal_users
// store, binds the session to the customer's workbook record, and
// resolves the tier discount. A known login whose customer row or tier
// is missing from the workbook is an account configuration error, not a
// credentials error.
func HandleLogin(app *pocketbase.PocketBase, store *catalog.Store, mgr *sessions.Manager) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		username := e.Request.FormValue("username")
		password := e.Request.FormValue("password")

		loginError := func(msg string) error {
			return templates.LoginPage(templates.LoginData{Error: msg}).Render(e.Request.Context(), e.Response)
		}

		record, err := app.FindFirstRecordByFilter(
			"portal_users",
			"customer_name = {:name}",
			map[string]any{"name": username},
		)
		if err != nil {
			log.Printf("login: unknown user %q: %v", username, err)
			return loginError("Username not found or password incorrect")
		}
		stored := record.GetString("password")
		if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
			log.Printf("login: wrong password for %q", username)
			return loginError("Username not found or password incorrect")
		}

		data, err := store.Get()
		if err != nil {
			log.Printf("login: catalogue load failed: %v", err)
			return catalogUnavailable(e)
		}

		customer, ok := data.CustomerByName(username)
		if !ok {
			log.Printf("login: user %q has no customer record in the workbook", username)
			return loginError("Account configuration error. Please contact us.")
		}
		discount, err := data.TierDiscount(customer.TierName)
		if err != nil {
			log.Printf("login: customer %q: %v", username, err)
			return loginError("Account configuration error. Please contact us.")
		}

		id, _ := mgr.Create(customer, discount)
		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessions.CookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Printf("login: %q logged in (tier %s)", customer.Name, customer.TierName)
		return e.Redirect(http.StatusFound, "/")
	}
}

// HandleLogout destroys the session and its cart.
func HandleLogout(mgr *sessions.Manager) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if cookie, err := e.Request.Cookie(sessions.CookieName); err == nil && cookie.Value != "" {
			mgr.Destroy(cookie.Value)
		}
		http.SetCookie(e.Response, &http.Cookie{
			Name:   sessions.CookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		return e.Redirect(http.StatusFound, "/login")
	}
}

// catalogUnavailable is the fatal-load response: no partial catalogue
// is ever served.
func catalogUnavailable(e *core.RequestEvent) error {
	e.Response.WriteHeader(http.StatusServiceUnavailable)
	return templates.ErrorPage("The product catalogue could not be loaded. Please try again shortly.").
		Render(e.Request.Context(), e.Response)
}
