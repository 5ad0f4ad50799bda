// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-course-sheet/internal/app"
	"github.com/MKhiriev/go-course-sheet/internal/media"
	"github.com/MKhiriev/go-course-sheet/internal/store"
)

// UserMessage translates a service, store or media error into the message
// shown to the user. File rejections are prefixed with the file name.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *media.ValidationError
	if errors.As(err, &vErr) {
		msg := mediaMessage(vErr.Err)
		if msg == "" {
			msg = app.MsgFileUnreadable
		}
		if vErr.Name == "" {
			return msg
		}
		return vErr.Name + " : " + msg
	}
	if msg := mediaMessage(err); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, ErrInvalidCourseSheet):
		return app.MsgInvalidCourseSheet
	case errors.Is(err, store.ErrQuotaExceeded):
		return app.MsgStorageFull
	case errors.Is(err, store.ErrStorageUnavailable):
		return app.MsgStorageUnavailable
	}

	return app.MsgSaveFailed
}

func mediaMessage(err error) string {
	switch {
	case errors.Is(err, media.ErrFileTooLarge):
		return app.MsgFileTooLarge
	case errors.Is(err, media.ErrUnsupportedType):
		return app.MsgUnsupportedFileType
	case errors.Is(err, media.ErrReadFile):
		return app.MsgFileUnreadable
	case errors.Is(err, media.ErrEmptyYouTubeURL):
		return app.MsgEmptyYouTubeURL
	case errors.Is(err, media.ErrInvalidYouTubeURL):
		return app.MsgInvalidYouTubeURL
	default:
		return ""
	}
}
