package media

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-course-sheet/models"
)

const (
	youtubeEmbedURLTemplate     = "https://www.youtube.com/embed/%s"
	youtubeThumbnailURLTemplate = "https://img.youtube.com/vi/%s/mqdefault.jpg"
)

// youtubePatterns are tried in order; the first match wins.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([^&\n?#]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// YouTubeRef is a normalized YouTube video reference.
type YouTubeRef struct {
	ID           string
	EmbedURL     string
	ThumbnailURL string
}

// ExtractYouTubeID returns the video identifier found in input, accepting
// watch, short-link, embed and /v/ URLs as well as a bare 11-character id.
func ExtractYouTubeID(input string) (string, bool) {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(input); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// ParseYouTube normalizes a user-supplied YouTube link or bare identifier.
// The derived URLs are pure string templates; no network access happens.
func ParseYouTube(input string) (YouTubeRef, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return YouTubeRef{}, newValidationError(input, ErrEmptyYouTubeURL)
	}

	id, ok := ExtractYouTubeID(input)
	if !ok {
		return YouTubeRef{}, newValidationError(input, ErrInvalidYouTubeURL)
	}

	return YouTubeRef{
		ID:           id,
		EmbedURL:     YouTubeEmbedURL(id),
		ThumbnailURL: YouTubeThumbnailURL(id),
	}, nil
}

// YouTubeEmbedURL returns the embeddable player URL of a video.
func YouTubeEmbedURL(id string) string {
	return fmt.Sprintf(youtubeEmbedURLTemplate, id)
}

// YouTubeThumbnailURL returns the medium-quality thumbnail URL of a video.
func YouTubeThumbnailURL(id string) string {
	return fmt.Sprintf(youtubeThumbnailURLTemplate, id)
}

// NewYouTubeAttachment builds the attachment describing ref.
func NewYouTubeAttachment(ref YouTubeRef, id string) models.Attachment {
	return models.Attachment{
		ID:         id,
		Type:       models.YouTube,
		DataURL:    ref.ThumbnailURL,
		YoutubeURL: ref.EmbedURL,
		Name:       "YouTube " + ref.ID,
		Size:       0,
	}
}

// AddYouTube normalizes input and returns the attachment for it.
func (c *Codec) AddYouTube(input string) (models.Attachment, error) {
	ref, err := ParseYouTube(input)
	if err != nil {
		return models.Attachment{}, err
	}
	return NewYouTubeAttachment(ref, c.ids.Generate()), nil
}
