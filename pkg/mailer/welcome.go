package mailer

import (
	"bytes"
	"html/template"
)

// TemplateWelcome is the template name the register flow enqueues.
const TemplateWelcome = "welcome"

const welcomeSubject = "Welcome to Calmline"

var welcomeTmpl = template.Must(template.New(TemplateWelcome).Parse(`<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Hi {{.Name}},</h2>
  <p>Your Calmline account is ready. Whenever things feel heavy, the chat is
  here for you — day or night.</p>
  <p>Your conversations are private and only visible to you.</p>
  <p>Take care,<br>The Calmline team</p>
</body>
</html>`))

// RenderWelcome renders the welcome email for a job's data. Data is
// expected to carry a "Name" key; a missing name renders an empty greeting
// rather than failing.
func RenderWelcome(data map[string]any) (subject, html string, err error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return welcomeSubject, buf.String(), nil
}
