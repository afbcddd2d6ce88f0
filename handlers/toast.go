package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// SetToast sets the HX-Trigger response header so HTMX fires a showToast
// event on the client. Handlers in this app set at most one toast per
// response, so any existing HX-Trigger value is replaced.
// A short-lived flash cookie carries the toast across regular (non-HTMX)
// redirects where response headers are lost.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]any{
		"showToast": map[string]string{
			"message": message,
			"type":    toastType,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(map[string]string{"message": message, "type": toastType})
	if err == nil {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "flash_toast",
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // JS needs to read it
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error text
// into the DOM. HX-Reswap: none makes HTMX ignore the response body while the
// HX-Trigger header still fires the toast event.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
