package services

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link that opens a chat with the
// business number and the message pre-filled. Checkout "submission" is
// exactly this link plus the downloaded order file; nothing is sent
// server-side.
func WhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + encodeWhatsAppText(message)
}

// encodeWhatsAppText percent-encodes a message for the text query
// parameter. Spaces become %20 rather than "+" so the preview renders
// the same in every WhatsApp client.
func encodeWhatsAppText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// OrderMessage is the plain-text order notification the customer sends
// after downloading the order file. Asterisks are WhatsApp bold markers.
func OrderMessage(data OrderExport) string {
	return fmt.Sprintf(
		"New Order Enquiry from: *%s*\n\n"+
			"PO Number: *%s*\n"+
			"Total Items: *%d*\n"+
			"Order Value: *%s*\n\n"+
			"_Detailed Excel file has been downloaded by the customer._",
		data.CustomerName, data.PODisplay(), data.ItemCount, FormatINR(data.GrandTotal),
	)
}

// AccountRequest is a prospective customer's access request, captured on
// the signup tab.
type AccountRequest struct {
	BusinessName  string
	ContactPerson string
	Phone         string
	GSTNumber     string
}

// AccountRequestMessage is the approval checklist sent to the business
// number for a new account request.
func AccountRequestMessage(req AccountRequest) string {
	gst := req.GSTNumber
	if gst == "" {
		gst = "N/A"
	}
	return fmt.Sprintf(
		"*New B2B Portal Account Request*\n\n"+
			"*Business Name:* %s\n"+
			"*Contact Person:* %s\n"+
			"*Phone:* %s\n"+
			"*GST:* %s\n\n"+
			"--- TO APPROVE ---\n"+
			"1. Add the business to the Customers sheet of database.xlsx\n"+
			"2. Approve the request in the portal admin",
		req.BusinessName, req.ContactPerson, req.Phone, gst,
	)
}
