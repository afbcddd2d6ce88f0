package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// SignupData drives the account request form and its confirmation.
type SignupData struct {
	Error       string
	Submitted   bool
	WhatsAppURL string
}

// SignupPage renders the new-customer account request form.
func SignupPage(data SignupData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Request an Account - Ahirwal Trading Portal</title>
<link rel="stylesheet" href="/static/portal.css">
</head>
<body class="login-body">
<main class="login-card">
<h1>New Customer Account Request</h1>
<p>Fill out this form to request access. We will approve your account shortly.</p>
`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`+"\n", esc(data.Error)); err != nil {
				return err
			}
		}
		if data.Submitted {
			if _, err := fmt.Fprintf(w, `<p class="form-success">Request submitted!</p>
<a class="whatsapp-button" href="%s" target="_blank" rel="noopener">Send Request via WhatsApp</a>
`, esc(data.WhatsAppURL)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<form method="post" action="/signup">
<label>Your Full Business Name*
<input type="text" name="business_name" required>
</label>
<label>Contact Person Name*
<input type="text" name="contact_person" required>
</label>
<label>Phone Number*
<input type="text" name="phone" required>
</label>
<label>GST Number (Optional)
<input type="text" name="gst_number">
</label>
<button type="submit">Submit Request</button>
</form>
`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<p class="signup-hint"><a href="/login">Back to login</a></p>
</main>
</body>
</html>
`)
		return err
	})
}
