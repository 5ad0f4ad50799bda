// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-course-sheet/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application : Fiche de cours MMA\nVersion : %s\nDate : %s\nCommit : %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())

	return renderPage("À PROPOS", body, "v / échap: retour")
}
