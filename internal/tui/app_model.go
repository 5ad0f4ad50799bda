package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-course-sheet/internal/app"
	"github.com/MKhiriev/go-course-sheet/internal/autocomplete"
	"github.com/MKhiriev/go-course-sheet/internal/export"
	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/internal/service"
	"github.com/MKhiriev/go-course-sheet/models"
)

const deleteConfirmation = "Êtes-vous sûr de vouloir supprimer cette fiche ?"

type screen int

const (
	screenView screen = iota
	screenEdit
	screenTemplates
	screenMedia
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	exporter      *export.Exporter
	opts          Options
	buildInfo     models.AppBuildInfo
	currentScreen screen

	sheet     sheetViewModel
	edit      editModel
	templates templatesModel
	media     mediaModel

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, exporter *export.Exporter, opts Options, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		exporter:      exporter,
		opts:          opts,
		buildInfo:     buildInfo,
		currentScreen: screenView,
		sheet:         sheetViewModel{loading: true},
		templates:     newTemplatesModel(),
		media:         newMediaModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDelete()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}

	case sheetLoadedMsg:
		m.sheet.loading = false
		m.sheet.sheet = models.CourseSheet{}
		if msg.ok {
			m.sheet.sheet = msg.sheet
		}
		return m, nil

	case sheetSavedMsg:
		m.edit.saving = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.sheet.sheet = msg.sheet
		m.currentScreen = screenView
		return m.setStatus("Fiche enregistrée")

	case sheetDeletedMsg:
		if msg.err != nil {
			m.showErrorf(app.MsgDeleteFailed)
			return m, nil
		}
		m.sheet.sheet = models.CourseSheet{}
		return m.setStatus("Fiche supprimée")

	case exportedMsg:
		if msg.err != nil {
			m.showErrorf(app.MsgExportFailed)
			return m, nil
		}
		return m.setStatus("Fiche exportée : " + msg.path)

	case uploadDoneMsg:
		m.media.uploading = false
		if msg.draft != m.edit.draft || m.currentScreen == screenView {
			// the editor was closed while the batch was running
			return m.setStatus("Import ignoré : la fiche a été fermée")
		}
		m.media.clamp(len(m.edit.draft.Media()))
		if len(msg.result.Errors) > 0 {
			m.showErrorf(humanizeErrors(msg.result.Errors))
		}
		if n := len(msg.result.Attachments); n > 0 {
			return m.setStatus(fmt.Sprintf("%d fichier(s) ajouté(s)", n))
		}
		return m, nil

	case copiedMsg:
		return m.setStatus("Lien copié")

	case copyFailedMsg:
		m.showErrorf(app.MsgClipboardFailed)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case blurTickMsg:
		if ed, ok := m.edit.fields[msg.field]; ok {
			ed.ctrl.Tick(msg.at)
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenView:
		return m.updateView(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenTemplates:
		return m.updateTemplates(msg)
	case screenMedia:
		return m.updateMedia(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenView:
		body = m.sheet.View()
	case screenEdit:
		body = m.edit.View()
	case screenTemplates:
		body = m.templates.View()
	case screenMedia:
		body = m.media.View(m.edit.draft.Media(), m.services.Codec.AcceptedTypes(), m.services.Codec.MaxSize())
	}

	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.buildInfo)
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m appModel) autocompleteOptions() []autocomplete.Option {
	return []autocomplete.Option{
		autocomplete.WithMaxSuggestions(m.opts.MaxSuggestions),
		autocomplete.WithBlurDelay(m.opts.BlurDelay),
	}
}

func (m appModel) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.sheet.loading {
		return m, nil
	}

	hasContent := m.sheet.sheet.HasContent()
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.newSheet) && !hasContent,
		key.Matches(keyMsg, keys.edit) && hasContent:
		m.edit = newEditModel(m.sheet.sheet, m.services.Suggestions, m.autocompleteOptions()...)
		m.currentScreen = screenEdit
		return m, textinputBlink()
	case key.Matches(keyMsg, keys.delete) && m.sheet.sheet.ID != "":
		m.showConfirm = true
		m.confirm.message = deleteConfirmation
		return m, nil
	case key.Matches(keyMsg, keys.export) && hasContent:
		return m, m.cmdExport(m.sheet.sheet)
	}

	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.edit.focus == rowDate {
			var cmd tea.Cmd
			m.edit.dateInput, cmd = m.edit.dateInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.edit.saving {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.save):
		if m.media.uploading {
			return m.setStatus("Import en cours, veuillez patienter")
		}
		sheet, err := m.edit.toSheet()
		if err != nil {
			m.showErrorf(humanizeError(err))
			return m, nil
		}
		m.edit.saving = true
		return m, m.cmdSave(sheet)
	case key.Matches(keyMsg, keys.templates):
		m.templates.idx = 0
		m.currentScreen = screenTemplates
		return m, nil
	case key.Matches(keyMsg, keys.media):
		m.media.clamp(len(m.edit.draft.Media()))
		m.currentScreen = screenMedia
		return m, nil
	}

	if f, ok := m.edit.focusedField(); ok && m.edit.fields[f].handleKey(keyMsg) {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenView
		return m, nil
	case key.Matches(keyMsg, keys.nextField):
		return m, m.edit.moveFocus(1, time.Now())
	case key.Matches(keyMsg, keys.prevField):
		return m, m.edit.moveFocus(-1, time.Now())
	}

	switch m.edit.focus {
	case rowDate:
		var cmd tea.Cmd
		m.edit.dateInput, cmd = m.edit.dateInput.Update(msg)
		return m, cmd
	case rowDiscipline:
		switch {
		case key.Matches(keyMsg, keys.left):
			m.edit.cycleDiscipline(-1)
		case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.enter):
			m.edit.cycleDiscipline(1)
		}
	}

	return m, nil
}

func (m appModel) updateTemplates(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.up):
		if m.templates.idx > 0 {
			m.templates.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.templates.idx < len(m.templates.names)-1 {
			m.templates.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		name, ok := m.templates.current()
		if !ok {
			return m, nil
		}
		m.edit.applyTemplate(name)
		m.currentScreen = screenEdit
		return m.setStatus("Template appliqué : " + models.TemplateLabel(name))
	}

	return m, nil
}

func (m appModel) updateMedia(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !m.media.uploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.media.spinner, cmd = m.media.spinner.Update(tick)
		return m, cmd
	}

	if m.media.inputMode != mediaInputNone {
		return m.updateMediaInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.edit.draft.Media()
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.up):
		if m.media.idx > 0 {
			m.media.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.media.idx < len(items)-1 {
			m.media.idx++
		}
	case key.Matches(keyMsg, keys.addFiles):
		if m.media.uploading {
			return m, nil
		}
		m.media.startInput(mediaInputFiles)
		return m, textinputBlink()
	case key.Matches(keyMsg, keys.addLink):
		m.media.startInput(mediaInputLink)
		return m, textinputBlink()
	case key.Matches(keyMsg, keys.remove):
		if m.media.idx < len(items) {
			m.edit.draft.RemoveAttachment(items[m.media.idx].ID)
			m.media.clamp(len(items) - 1)
		}
	case key.Matches(keyMsg, keys.copy):
		if m.media.idx < len(items) {
			if text, ok := copyText(items[m.media.idx]); ok {
				return m, cmdCopyToClipboard(text)
			}
		}
	}

	return m, nil
}

func (m appModel) updateMediaInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.media.stopInput()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			value := m.media.input.Value()
			mode := m.media.inputMode
			m.media.stopInput()

			if mode == mediaInputLink {
				att, err := m.services.Codec.AddYouTube(value)
				if err != nil {
					m.showErrorf(humanizeError(err))
					return m, nil
				}
				m.edit.draft.AddAttachment(att)
				m.media.idx = len(m.edit.draft.Media()) - 1
				return m, nil
			}

			paths := splitPaths(value)
			if len(paths) == 0 {
				return m, nil
			}
			m.media.uploading = true
			return m, tea.Batch(m.media.spinner.Tick, m.cmdUpload(paths))
		}
	}

	var cmd tea.Cmd
	m.media.input, cmd = m.media.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseSheetService
	return func() tea.Msg {
		sheet, ok := svc.Load(ctx)
		return sheetLoadedMsg{sheet: sheet, ok: ok}
	}
}

func (m appModel) cmdSave(sheet models.CourseSheet) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseSheetService
	return func() tea.Msg {
		saved, err := svc.Save(ctx, sheet)
		return sheetSavedMsg{sheet: saved, err: err}
	}
}

func (m appModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CourseSheetService
	return func() tea.Msg {
		return sheetDeletedMsg{err: svc.Delete(ctx)}
	}
}

func (m appModel) cmdExport(sheet models.CourseSheet) tea.Cmd {
	exporter := m.exporter
	return func() tea.Msg {
		path, err := exporter.Export(sheet)
		return exportedMsg{path: path, err: err}
	}
}

// cmdUpload reads the files at paths in the background. Accepted files are
// appended to the draft as soon as each one is encoded.
func (m appModel) cmdUpload(paths []string) tea.Cmd {
	ctx := m.ctx
	uploader := m.services.Uploader
	draft := m.edit.draft
	return func() tea.Msg {
		var (
			files   []media.File
			openErr []error
		)
		for _, p := range paths {
			f, err := media.FileFromPath(p)
			if err != nil {
				openErr = append(openErr, err)
				continue
			}
			files = append(files, f)
		}

		result := uploader.Upload(ctx, files, draft.AddAttachment)
		result.Errors = append(openErr, result.Errors...)
		return uploadDoneMsg{result: result, draft: draft}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
