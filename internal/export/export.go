// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders a course sheet as a standalone HTML page that can
// be opened in a browser and printed.
//
// The sheet is first written as Markdown, then converted with goldmark.
// Raw HTML typed into a text field is never passed through.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/models"
)

const (
	// Heading is the title of an exported sheet.
	Heading = "Fiche de cours"

	// MediaHeading introduces the attachment list.
	MediaHeading = "Photos / Vidéos"

	fileNamePrefix = "cours_"
	fileExt        = ".html"
)

var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
img { max-width: 100%; }
h2 { border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// FileName returns the export file name of sheet: "cours_DD-MM-YYYY.html",
// dated with the course day or with now when the sheet has none.
func FileName(sheet models.CourseSheet, now time.Time) string {
	date := now
	if sheet.Date != nil {
		date = *sheet.Date
	}
	return fileNamePrefix + date.Format("02-01-2006") + fileExt
}

// Markdown returns the Markdown source of sheet. Empty fields are skipped.
func Markdown(sheet models.CourseSheet) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# %s\n\n", Heading)

	var meta []string
	if sheet.Date != nil {
		meta = append(meta, "**"+FormatLongDate(*sheet.Date)+"**")
	}
	if sheet.Discipline != nil && *sheet.Discipline != "" {
		meta = append(meta, "*"+escapeMarkdown(string(*sheet.Discipline))+"*")
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " · "))
		b.WriteString("\n\n")
	}

	for _, f := range models.SheetFields {
		text := models.Deref(models.NilIfEmpty(sheet.Field(f)))
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", f.Title(), escapeBlockMarkers(strings.TrimSpace(text)))
	}

	if len(sheet.Media) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", MediaHeading)
		for _, att := range sheet.Media {
			b.WriteString(mediaLine(att))
			b.WriteString("\n")
		}
	}

	return b.Bytes()
}

func mediaLine(att models.Attachment) string {
	name := escapeMarkdown(att.Name)
	switch att.Type {
	case models.Image:
		return fmt.Sprintf("- ![%s](%s)", name, att.DataURL)
	case models.YouTube:
		return fmt.Sprintf("- [![%s](%s)](%s)", name, att.DataURL, att.YoutubeURL)
	default:
		return fmt.Sprintf("- %s (vidéo)", name)
	}
}

// Render returns the sheet as a complete HTML document.
func Render(sheet models.CourseSheet) ([]byte, error) {
	var body bytes.Buffer
	if err := mdRenderer.Convert(Markdown(sheet), &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingSheet, err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: Heading,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingSheet, err)
	}

	return page.Bytes(), nil
}

// Exporter writes rendered sheets into a directory.
type Exporter struct {
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

func NewExporter(dir string, logger *logger.Logger) *Exporter {
	return &Exporter{dir: dir, now: time.Now, logger: logger}
}

// Export renders sheet and writes it into the export directory. It returns
// the path of the written file.
func (e *Exporter) Export(sheet models.CourseSheet) (string, error) {
	page, err := Render(sheet)
	if err != nil {
		e.logger.Err(err).Str("func", "*Exporter.Export").Msg("error rendering course sheet")
		return "", err
	}

	if err = os.MkdirAll(e.dir, 0o755); err != nil {
		e.logger.Err(err).Str("func", "*Exporter.Export").Str("dir", e.dir).Msg("error creating export directory")
		return "", fmt.Errorf("%w: %w", ErrWritingExport, err)
	}

	path := filepath.Join(e.dir, FileName(sheet, e.now()))
	if err = os.WriteFile(path, page, 0o644); err != nil {
		e.logger.Err(err).Str("func", "*Exporter.Export").Str("path", path).Msg("error writing export")
		return "", fmt.Errorf("%w: %w", ErrWritingExport, err)
	}

	e.logger.Info().Str("func", "*Exporter.Export").Str("path", path).Msg("course sheet exported")
	return path, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`<`, `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// escapeBlockMarkers keeps field text from opening headings, block quotes or
// horizontal rules, which would break the section layout of the export.
// List markers are left alone: templates are written as "- " lists.
func escapeBlockMarkers(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		if trimmed[0] == '#' || trimmed[0] == '>' || isRuleLine(trimmed) {
			lines[i] = line[:len(line)-len(trimmed)] + `\` + trimmed
		}
	}
	return strings.Join(lines, "\n")
}

// isRuleLine reports whether line is made of a single repeated rule or
// setext underline character, spaces aside.
func isRuleLine(line string) bool {
	marker := line[0]
	if !strings.ContainsRune("-=*_", rune(marker)) {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != marker && line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}
