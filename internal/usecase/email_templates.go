package usecase

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/tourism-portal/internal/domain"
)

type emailTemplate struct {
	subject string
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

func newEmailTemplate(name, subject, text, html string) emailTemplate {
	return emailTemplate{
		subject: subject,
		text:    texttemplate.Must(texttemplate.New(name).Parse(text)),
		html:    htmltemplate.Must(htmltemplate.New(name).Parse(html)),
	}
}

// render заполняет обе части письма. HTML-часть экранирует пользовательский ввод.
func (t emailTemplate) render(to string, data interface{}) (domain.EmailMessage, error) {
	var text, html bytes.Buffer
	if err := t.text.Execute(&text, data); err != nil {
		return domain.EmailMessage{}, err
	}
	if err := t.html.Execute(&html, data); err != nil {
		return domain.EmailMessage{}, err
	}
	return domain.EmailMessage{
		To:      to,
		Subject: t.subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

var (
	welcomeTemplate = newEmailTemplate("welcome",
		"Welcome to Visit Namibia",
		`Hi {{.Name}},

Thanks for joining Visit Namibia. Start planning your trip at {{.URL}}.

The Visit Namibia team
`,
		`<p>Hi {{.Name}},</p>
<p>Thanks for joining Visit Namibia. Start planning your trip at <a href="{{.URL}}">{{.URL}}</a>.</p>
<p>The Visit Namibia team</p>
`)

	passwordResetTemplate = newEmailTemplate("password_reset",
		"Reset your Visit Namibia password",
		`Hi {{.Name}},

Use the link below to choose a new password. It expires in {{.ExpiresIn}}.

{{.URL}}

If you did not ask for this, ignore this email.
`,
		`<p>Hi {{.Name}},</p>
<p>Use the link below to choose a new password. It expires in {{.ExpiresIn}}.</p>
<p><a href="{{.URL}}">Reset password</a></p>
<p>If you did not ask for this, ignore this email.</p>
`)

	contactTemplate = newEmailTemplate("contact_notification",
		"New contact message",
		`From: {{.Name}} <{{.Email}}>
Subject: {{.Subject}}

{{.Message}}
`,
		`<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<pre>{{.Message}}</pre>
`)
)
