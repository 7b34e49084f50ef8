package mail

import (
	"bytes"
	"html/template"
)

const welcomeTemplate = `<html>
<body>
  <h2>Welcome to Trend Trails, {{.FullName}}!</h2>
  <p>Your account is ready. Sign in and start writing.</p>
</body>
</html>`

const passwordResetTemplate = `<html>
<body>
  <h2>Hi {{.FullName}},</h2>
  <p>We received a request to reset your password.</p>
  <p><a href="{{.ResetURL}}">Reset your password</a></p>
  <p>If you didn't ask for this, you can safely ignore this email.</p>
</body>
</html>`

var (
	welcomeTmpl       = template.Must(template.New("welcome").Parse(welcomeTemplate))
	passwordResetTmpl = template.Must(template.New("password-reset").Parse(passwordResetTemplate))
)

func renderWelcome(fullName string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTmpl.Execute(&buf, struct{ FullName string }{fullName})
	return buf.String(), err
}

func renderPasswordReset(fullName, resetURL string) (string, error) {
	var buf bytes.Buffer
	err := passwordResetTmpl.Execute(&buf, struct {
		FullName string
		ResetURL string
	}{fullName, resetURL})
	return buf.String(), err
}
