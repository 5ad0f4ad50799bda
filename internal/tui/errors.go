// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-course-sheet/internal/service"
)

var errInvalidDate = errors.New("invalid date")

// humanizeError returns the message shown in the error overlay for err.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errInvalidDate) {
		return "Date invalide, format attendu : jj/mm/aaaa"
	}
	return service.UserMessage(err)
}

// humanizeErrors joins the messages of several rejected files.
func humanizeErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, humanizeError(err))
	}
	return strings.Join(msgs, "\n")
}
