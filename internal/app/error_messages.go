// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// course sheet editor.
//
// All Msg* constants are human-readable French message strings shown to the
// user when an operation fails. Keeping them in one place ensures consistent
// wording across the screens.
package app

const (
	// MsgSaveFailed is shown when the record could not be written for an
	// unclassified reason. The previous record is still stored.
	MsgSaveFailed = "La fiche n'a pas pu être enregistrée"

	// MsgStorageFull is shown when the storage medium has no room left.
	MsgStorageFull = "Espace de stockage insuffisant, la fiche n'a pas été enregistrée"

	// MsgStorageUnavailable is shown when the storage medium cannot be
	// reached.
	MsgStorageUnavailable = "Stockage indisponible, la fiche n'a pas été enregistrée"

	// MsgDeleteFailed is shown when the stored record could not be removed.
	MsgDeleteFailed = "La fiche n'a pas pu être supprimée"

	// MsgInvalidCourseSheet is shown when the edited sheet is rejected
	// before being saved.
	MsgInvalidCourseSheet = "La fiche contient des données invalides"

	// MsgFileTooLarge is shown for a file above the size cap.
	MsgFileTooLarge = "Fichier trop volumineux"

	// MsgUnsupportedFileType is shown for a file outside the allow-lists.
	MsgUnsupportedFileType = "Type de fichier non supporté"

	// MsgFileUnreadable is shown when a file cannot be opened or read.
	MsgFileUnreadable = "Impossible de lire le fichier"

	// MsgEmptyYouTubeURL is shown when the YouTube field is blank.
	MsgEmptyYouTubeURL = "Veuillez saisir un lien YouTube"

	// MsgInvalidYouTubeURL is shown when no video can be found in a link.
	MsgInvalidYouTubeURL = "URL YouTube invalide"

	// MsgExportFailed is shown when the sheet could not be exported.
	MsgExportFailed = "L'export de la fiche a échoué"

	// MsgClipboardFailed is shown when the clipboard is not available.
	MsgClipboardFailed = "Presse-papiers indisponible"
)
