package email

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TemplateWelcome          = "welcome"
	TemplatePasswordReset    = "password_reset"
	TemplateTaskAssigned     = "task_assigned"
	TemplateTaskReminder     = "task_reminder"
	TemplateDocumentApproved = "document_approved"
	TemplateDocumentRejected = "document_rejected"
)

var templateNames = []string{
	TemplateWelcome,
	TemplatePasswordReset,
	TemplateTaskAssigned,
	TemplateTaskReminder,
	TemplateDocumentApproved,
	TemplateDocumentRejected,
}

// Renderer menyimpan satu template set per email. Setiap file mendefinisikan
// blok "subject" dan "body" dan memakai header/footer dari layout.html.
type Renderer struct {
	sets map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	sets := make(map[string]*template.Template, len(templateNames))
	for _, name := range templateNames {
		t, err := template.New(name).
			Funcs(sprig.FuncMap()).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse email template %s: %w", name, err)
		}
		sets[name] = t
	}
	return &Renderer{sets: sets}, nil
}

func (r *Renderer) Render(name string, data any) (subject, body string, err error) {
	t, ok := r.sets[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "subject", data); err != nil {
		return "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	subject = html.UnescapeString(strings.TrimSpace(buf.String()))

	buf.Reset()
	if err := t.ExecuteTemplate(&buf, "body", data); err != nil {
		return "", "", fmt.Errorf("render %s body: %w", name, err)
	}
	return subject, strings.TrimSpace(buf.String()), nil
}
