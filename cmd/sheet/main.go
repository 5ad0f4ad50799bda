package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-course-sheet/internal/config"
	"github.com/MKhiriev/go-course-sheet/internal/export"
	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/internal/service"
	"github.com/MKhiriev/go-course-sheet/internal/store"
	"github.com/MKhiriev/go-course-sheet/internal/tui"
	"github.com/MKhiriev/go-course-sheet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("course-sheet", cfg.Log.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slot, err := store.NewSlotStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create slot storage")
	}
	defer func() {
		if closeErr := slot.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close slot storage")
		}
	}()

	services := service.NewClientServices(slot, cfg, log)
	exporter := export.NewExporter(cfg.Export.Dir, log)

	ui := tui.New(services, exporter, tui.Options{
		MaxSuggestions: cfg.Editor.MaxSuggestions,
		BlurDelay:      cfg.Editor.BlurDelay,
	}, buildInfo, log)

	if err = ui.Run(ctx); err != nil {
		log.Err(err).Msg("editor run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
