package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginData drives the login form.
type LoginData struct {
	Error string
}

// LoginPage renders the customer login form. It is the only page served
// without a session.
func LoginPage(data LoginData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Login - Ahirwal Trading Portal</title>
<link rel="stylesheet" href="/static/portal.css">
</head>
<body class="login-body">
<main class="login-card">
<h1>B2B Customer Portal Login</h1>
`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`+"\n", esc(data.Error)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<form method="post" action="/login">
<label>Registered Business Name
<input type="text" name="username" required autofocus>
</label>
<label>Password
<input type="password" name="password" required>
</label>
<button type="submit">Log in</button>
</form>
<p class="signup-hint">No account yet? <a href="/signup">Request an account</a>.</p>
</main>
</body>
</html>
`)
		return err
	})
}
