package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"orderportal/services"
	"orderportal/templates"
)

// HandleSignupPage renders the account request form.
func HandleSignupPage() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.SignupPage(templates.SignupData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleSignup stores a new account request and offers the WhatsApp
// deep link carrying the approval summary. Approval itself is manual.
func HandleSignup(app *pocketbase.PocketBase, whatsAppNumber string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req := services.AccountRequest{
			BusinessName:  strings.TrimSpace(e.Request.FormValue("business_name")),
			ContactPerson: strings.TrimSpace(e.Request.FormValue("contact_person")),
			Phone:         strings.TrimSpace(e.Request.FormValue("phone")),
			GSTNumber:     strings.TrimSpace(e.Request.FormValue("gst_number")),
		}

		if req.BusinessName == "" || req.ContactPerson == "" || req.Phone == "" {
			return templates.SignupPage(templates.SignupData{
				Error: "Please fill out all required fields marked with *",
			}).Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("account_requests")
		if err != nil {
			log.Printf("signup: account_requests collection missing: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		record := core.NewRecord(col)
		record.Set("business_name", req.BusinessName)
		record.Set("contact_person", req.ContactPerson)
		record.Set("phone", req.Phone)
		record.Set("gst_number", req.GSTNumber)
		record.Set("status", "pending")
		if err := app.Save(record); err != nil {
			log.Printf("signup: failed to save request for %q: %v", req.BusinessName, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("signup: stored account request for %q", req.BusinessName)

		return templates.SignupPage(templates.SignupData{
			Submitted:   true,
			WhatsAppURL: services.WhatsAppLink(whatsAppNumber, services.AccountRequestMessage(req)),
		}).Render(e.Request.Context(), e.Response)
	}
}
