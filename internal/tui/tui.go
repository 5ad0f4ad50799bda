// Package tui is the terminal editor of the course sheet, built on
// bubbletea.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-course-sheet/internal/export"
	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/internal/service"
	"github.com/MKhiriev/go-course-sheet/models"
)

// Options tunes the text fields of the editor.
type Options struct {
	MaxSuggestions int
	BlurDelay      time.Duration
}

type TUI struct {
	services  *service.ClientServices
	exporter  *export.Exporter
	opts      Options
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, exporter *export.Exporter, opts Options, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		exporter:  exporter,
		opts:      opts,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the editor until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.exporter, t.opts, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal ui stopped")
		return err
	}
	return nil
}
