package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-course-sheet/models"
)

func TestParseYouTube_ShortLink(t *testing.T) {
	ref, err := ParseYouTube("https://youtu.be/dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", ref.ID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", ref.EmbedURL)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg", ref.ThumbnailURL)
}

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{name: "watch", input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "embed", input: "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "v path", input: "youtube.com/v/dQw4w9WgXcQ#frag", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "short link with query", input: "youtu.be/abc-DEF_123?si=x", wantID: "abc-DEF_123", wantOK: true},
		{name: "bare id", input: "dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "bare id too short", input: "dQw4w9WgXc", wantOK: false},
		{name: "other host", input: "https://vimeo.com/12345", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractYouTubeID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestParseYouTube_Errors(t *testing.T) {
	_, err := ParseYouTube("   ")
	assert.ErrorIs(t, err, ErrEmptyYouTubeURL)

	_, err = ParseYouTube("not a video")
	assert.ErrorIs(t, err, ErrInvalidYouTubeURL)
}

func TestCodec_AddYouTube(t *testing.T) {
	c := NewCodec(Config{}, sequentialIDs())

	att, err := c.AddYouTube("  https://youtu.be/dQw4w9WgXcQ ")

	require.NoError(t, err)
	assert.Equal(t, models.Attachment{
		ID:         "att-1",
		Type:       models.YouTube,
		DataURL:    "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg",
		YoutubeURL: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Name:       "YouTube dQw4w9WgXcQ",
	}, att)
}
