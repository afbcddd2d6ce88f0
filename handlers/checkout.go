package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"orderportal/services"
	"orderportal/sessions"
)

// HandleCartFinalize captures the optional PO number and marks the
// order ready for export. Nothing is recorded server-side: submission
// is the downloaded file plus the WhatsApp link on the cart page.
func HandleCartFinalize() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}
		if session.Cart.Empty() {
			return ErrorToast(e, http.StatusBadRequest, "Your cart is empty. Add items from the Order Pad.")
		}

		session.PONumber = strings.TrimSpace(e.Request.FormValue("po_number"))
		session.Finalized = true

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/cart")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/cart")
	}
}

// buildOrderExport snapshots the session cart for the exporters.
func buildOrderExport(session *sessions.Session) services.OrderExport {
	return services.BuildOrderExport(
		session.Cart,
		session.Customer.Name,
		session.PONumber,
		time.Now().Format("02 Jan 2006"),
	)
}

// orderFilename builds the download name, e.g. Order_Sharma_Hardware_20250115.xlsx.
func orderFilename(customerName, ext string) string {
	return fmt.Sprintf("Order_%s_%s.%s",
		sanitizeFilename(customerName),
		time.Now().Format("20060102"),
		ext,
	)
}

// sanitizeFilename replaces characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleOrderExportExcel streams the cart as an Excel order file.
func HandleOrderExportExcel() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}
		if session.Cart.Empty() {
			return e.String(http.StatusBadRequest, "Cart is empty")
		}

		xlsxBytes, err := services.GenerateOrderExcel(buildOrderExport(session))
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, orderFilename(session.Customer.Name, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleOrderExportPDF streams the cart as a PDF order file.
func HandleOrderExportPDF() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, ok := requireSession(e)
		if !ok {
			return nil
		}
		if session.Cart.Empty() {
			return e.String(http.StatusBadRequest, "Cart is empty")
		}

		pdfBytes, err := services.GenerateOrderPDF(buildOrderExport(session))
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, orderFilename(session.Customer.Name, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
