package tui

import (
	"strings"

	"github.com/MKhiriev/go-course-sheet/internal/export"
	"github.com/MKhiriev/go-course-sheet/models"
)

type sheetViewModel struct {
	sheet   models.CourseSheet
	loading bool
}

func (m sheetViewModel) View() string {
	if m.loading {
		return renderPage(export.Heading, "Chargement...", "")
	}

	if !m.sheet.HasContent() {
		return renderPage(export.Heading, "Aucun cours enregistré", "n créer la fiche  v à propos  q quitter")
	}

	var b strings.Builder

	var meta []string
	if m.sheet.Date != nil {
		meta = append(meta, export.FormatLongDate(*m.sheet.Date))
	}
	if m.sheet.Discipline != nil && *m.sheet.Discipline != "" {
		meta = append(meta, disciplineBadge(*m.sheet.Discipline))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, "  "))
		b.WriteString("\n\n")
	}

	for _, f := range models.SheetFields {
		text := m.sheet.Field(f)
		if text == nil || *text == "" {
			continue
		}
		b.WriteString(labelStyle.Render(f.Title()))
		b.WriteString("\n")
		b.WriteString(indent(*text, "  "))
		b.WriteString("\n\n")
	}

	if len(m.sheet.Media) > 0 {
		b.WriteString(labelStyle.Render(export.MediaHeading))
		b.WriteString("\n")
		for _, att := range m.sheet.Media {
			b.WriteString("  ")
			b.WriteString(attachmentLine(att))
			b.WriteString("\n")
		}
	}

	return renderPage(export.Heading, strings.TrimRight(b.String(), "\n"),
		"e modifier  d supprimer  p exporter  v à propos  q quitter")
}
