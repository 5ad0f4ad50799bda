// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media turns user-supplied media into attachments of a course sheet.
//
// Two independent conversions are provided:
//   - uploaded files are validated and encoded as inline "data:" URLs
//     ([Codec], [Uploader]);
//   - YouTube links are normalized into a canonical identifier with derived
//     embed and thumbnail URLs ([ParseYouTube]).
package media

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-course-sheet/internal/utils"
	"github.com/MKhiriev/go-course-sheet/models"
)

// MaxFileSize is the default per-file size cap (10 MiB).
const MaxFileSize int64 = 10 * 1024 * 1024

var (
	// AcceptedImageTypes is the allow-list of inline image types.
	AcceptedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	// AcceptedVideoTypes is the allow-list of inline video types.
	AcceptedVideoTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
)

var extensionTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
}

// Config tunes a [Codec].
type Config struct {
	// MaxFileSize is the per-file size cap in bytes. Zero, negative or larger
	// values mean [MaxFileSize].
	MaxFileSize int64
	// AllowVideo enables the video allow-list.
	AllowVideo bool
}

// Codec validates files and encodes them as inline attachments.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	maxSize    int64
	imageTypes []string
	videoTypes []string
	ids        utils.IDGenerator
}

// NewCodec builds a codec. A nil ids generator falls back to UUIDs.
func NewCodec(cfg Config, ids utils.IDGenerator) *Codec {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 || maxSize > MaxFileSize {
		maxSize = MaxFileSize
	}

	c := &Codec{
		maxSize:    maxSize,
		imageTypes: AcceptedImageTypes,
		ids:        ids,
	}
	if cfg.AllowVideo {
		c.videoTypes = AcceptedVideoTypes
	}
	return c
}

// MaxSize returns the per-file size cap in bytes.
func (c *Codec) MaxSize() int64 {
	return c.maxSize
}

// AcceptedTypes returns every accepted media type, images first.
func (c *Codec) AcceptedTypes() []string {
	return slices.Concat(c.imageTypes, c.videoTypes)
}

// Classify maps a media type to the attachment kind it produces.
// The second result is false for types outside the allow-lists.
func (c *Codec) Classify(mimeType string) (models.AttachmentType, bool) {
	mimeType = baseMediaType(mimeType)
	switch {
	case slices.Contains(c.imageTypes, mimeType):
		return models.Image, true
	case slices.Contains(c.videoTypes, mimeType):
		return models.Video, true
	default:
		return "", false
	}
}

// Validate checks a file's declared size and type before any byte is read.
func (c *Codec) Validate(name, mimeType string, size int64) (models.AttachmentType, error) {
	if size > c.maxSize {
		return "", newValidationError(name, fmt.Errorf("%w (max %s)", ErrFileTooLarge, FormatSize(c.maxSize)))
	}

	kind, ok := c.Classify(mimeType)
	if !ok {
		return "", newValidationError(name, ErrUnsupportedType)
	}

	return kind, nil
}

// Encode validates data and returns the inline attachment built from it.
// Failures are returned as *[ValidationError].
func (c *Codec) Encode(name, mimeType string, data []byte) (models.Attachment, error) {
	kind, err := c.Validate(name, mimeType, int64(len(data)))
	if err != nil {
		return models.Attachment{}, err
	}

	return models.Attachment{
		ID:      c.ids.Generate(),
		Type:    kind,
		DataURL: EncodeDataURL(baseMediaType(mimeType), data),
		Name:    name,
		Size:    int64(len(data)),
	}, nil
}

// DetectType guesses the declared media type of a file from its name and,
// failing that, from its first bytes.
func DetectType(name string, head []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return baseMediaType(t)
	}
	if len(head) > 0 {
		return baseMediaType(http.DetectContentType(head))
	}
	return ""
}

// FormatSize renders a byte count the way the editor displays it.
func FormatSize(size int64) string {
	const mb = 1024 * 1024
	const kb = 1024

	if size >= mb {
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	}
	if size >= kb {
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	}
	return fmt.Sprintf("%d B", size)
}

func baseMediaType(t string) string {
	if parsed, _, err := mime.ParseMediaType(t); err == nil {
		return parsed
	}
	return strings.ToLower(strings.TrimSpace(t))
}
