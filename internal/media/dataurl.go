package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURLScheme = "data:"
	base64Marker  = ";base64"
)

// EncodeDataURL returns the RFC 2397 "data:" URL of data tagged with mimeType.
// The result is self-contained: [DecodeDataURL] restores both the type and
// the bytes without any other context.
func EncodeDataURL(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(dataURLScheme) + len(mimeType) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(dataURLScheme)
	b.WriteString(mimeType)
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// DecodeDataURL splits a base64 "data:" URL into its media type and payload.
func DecodeDataURL(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, dataURLScheme) {
		return "", nil, fmt.Errorf("%w: missing %q scheme", ErrInvalidDataURL, dataURLScheme)
	}

	meta, payload, ok := strings.Cut(s[len(dataURLScheme):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrInvalidDataURL)
	}

	mimeType, isBase64 := strings.CutSuffix(meta, base64Marker)
	if !isBase64 {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURL)
	}
	if mimeType == "" {
		return "", nil, fmt.Errorf("%w: missing media type", ErrInvalidDataURL)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}

	return mimeType, data, nil
}

// DecodedSize returns the payload size of a base64 data URL without decoding
// it. It returns -1 if s is not a base64 data URL.
func DecodedSize(s string) int64 {
	if !strings.HasPrefix(s, dataURLScheme) {
		return -1
	}
	meta, payload, ok := strings.Cut(s[len(dataURLScheme):], ",")
	if !ok || !strings.HasSuffix(meta, base64Marker) {
		return -1
	}
	n := base64.StdEncoding.DecodedLen(len(payload))
	n -= strings.Count(payload[max(0, len(payload)-2):], "=")
	return int64(n)
}
