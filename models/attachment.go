// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AttachmentType defines how the payload of an [Attachment] must be read.
type AttachmentType string

const (
	// Image is an inline-encoded raster image.
	Image AttachmentType = "image"

	// Video is an inline-encoded video file.
	Video AttachmentType = "video"

	// YouTube is a reference to a YouTube video. No binary data is stored.
	YouTube AttachmentType = "youtube"
)

// IsValid reports whether t is one of the known attachment types.
func (t AttachmentType) IsValid() bool {
	switch t {
	case Image, Video, YouTube:
		return true
	default:
		return false
	}
}

// IsInline reports whether attachments of type t carry an inline binary payload.
func (t AttachmentType) IsInline() bool {
	return t == Image || t == Video
}

// Attachment is one media item bound to a [CourseSheet].
type Attachment struct {
	// ID is unique among the attachments of one sheet.
	ID string

	// Type is the attachment kind.
	Type AttachmentType

	// DataURL holds a self-describing "data:" URL for Image and Video,
	// and the thumbnail image URL for YouTube.
	DataURL string

	// YoutubeURL is the embeddable player URL. Set only for YouTube.
	YoutubeURL string

	// Name is the human-readable label (original file name or generated title).
	Name string

	// Size is the size of the original file in bytes. Always 0 for YouTube.
	Size int64
}
