package tui

import (
	"strings"

	"github.com/MKhiriev/go-course-sheet/models"
)

type templatesModel struct {
	names []string
	idx   int
}

func newTemplatesModel() templatesModel {
	return templatesModel{names: models.TemplateNames()}
}

func (m templatesModel) current() (string, bool) {
	if m.idx < 0 || m.idx >= len(m.names) {
		return "", false
	}
	return m.names[m.idx], true
}

func (m templatesModel) View() string {
	var b strings.Builder
	for i, name := range m.names {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(models.TemplateLabel(name))
		b.WriteString("\n")
	}
	return renderPage("Charger un template", b.String(), "↑↓ choisir  entrée appliquer  échap retour")
}
