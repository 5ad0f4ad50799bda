package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-course-sheet/internal/export"
	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/models"
)

type mediaInput int

const (
	mediaInputNone mediaInput = iota
	mediaInputFiles
	mediaInputLink
)

// pathSeparator splits several file paths typed on one line.
const pathSeparator = ";"

type mediaModel struct {
	idx       int
	inputMode mediaInput
	input     textinput.Model
	uploading bool
	spinner   spinner.Model
}

func newMediaModel() mediaModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Width = 60

	return mediaModel{spinner: s, input: input}
}

func (m *mediaModel) startInput(mode mediaInput) {
	m.inputMode = mode
	m.input.SetValue("")
	switch mode {
	case mediaInputFiles:
		m.input.Placeholder = "photo.jpg; video.mp4"
	case mediaInputLink:
		m.input.Placeholder = "https://www.youtube.com/watch?v=..."
	}
	m.input.Focus()
}

func (m *mediaModel) stopInput() {
	m.inputMode = mediaInputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *mediaModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// splitPaths returns the non-blank paths of a separated list.
func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, pathSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// copyText returns what the copy key puts on the clipboard for att.
func copyText(att models.Attachment) (string, bool) {
	if att.Type == models.YouTube && att.YoutubeURL != "" {
		return att.YoutubeURL, true
	}
	return "", false
}

func attachmentLine(att models.Attachment) string {
	switch att.Type {
	case models.Image:
		return fmt.Sprintf("[image] %s (%s)", fitText(att.Name, 40), media.FormatSize(att.Size))
	case models.Video:
		return fmt.Sprintf("[vidéo] %s (%s)", fitText(att.Name, 40), media.FormatSize(att.Size))
	case models.YouTube:
		return fmt.Sprintf("[youtube] %s", att.YoutubeURL)
	default:
		return att.Name
	}
}

func (m mediaModel) View(items []models.Attachment, accepted []string, maxSize int64) string {
	var b strings.Builder

	if len(items) == 0 {
		b.WriteString("Aucun média\n")
	}
	for i, att := range items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(attachmentLine(att))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("Formats : %s, max %s", strings.Join(accepted, ", "), media.FormatSize(maxSize))))
	b.WriteString("\n")

	switch m.inputMode {
	case mediaInputFiles:
		b.WriteString("\nFichiers (séparés par « ; ») :\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case mediaInputLink:
		b.WriteString("\nLien YouTube :\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.uploading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Import en cours...\n")
	}

	hotKeys := "a fichiers  y YouTube  x retirer  c copier le lien  échap retour"
	if m.inputMode != mediaInputNone {
		hotKeys = "entrée valider  échap annuler"
	}
	return renderPage(export.MediaHeading, b.String(), hotKeys)
}
