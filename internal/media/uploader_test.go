package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/models"
)

func memFile(name, mimeType string, data []byte) File {
	return File{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func TestUploader_Upload_FailureDoesNotAbortBatch(t *testing.T) {
	codec := NewCodec(Config{MaxFileSize: 64}, nil)
	u := NewUploader(codec, 2, logger.Nop())

	files := []File{
		memFile("a.png", "image/png", []byte("first")),
		memFile("big.png", "image/png", make([]byte, 65)),
		memFile("doc.pdf", "application/pdf", []byte("%PDF")),
		memFile("b.gif", "image/gif", []byte("second")),
	}

	var seen []string
	result := u.Upload(context.Background(), files, func(att models.Attachment) {
		seen = append(seen, att.Name)
	})

	require.Len(t, result.Attachments, 2)
	require.Len(t, result.Errors, 2)

	names := []string{result.Attachments[0].Name, result.Attachments[1].Name}
	sort.Strings(names)
	assert.Equal(t, []string{"a.png", "b.gif"}, names)

	sort.Strings(seen)
	assert.Equal(t, names, seen)

	var tooLarge, unsupported int
	for _, err := range result.Errors {
		switch {
		case errors.Is(err, ErrFileTooLarge):
			tooLarge++
		case errors.Is(err, ErrUnsupportedType):
			unsupported++
		}
	}
	assert.Equal(t, 1, tooLarge)
	assert.Equal(t, 1, unsupported)
}

func TestUploader_Upload_DeclaredSizeCannotBypassCap(t *testing.T) {
	codec := NewCodec(Config{MaxFileSize: 8}, nil)
	u := NewUploader(codec, 1, nil)

	f := memFile("liar.png", "image/png", make([]byte, 100))
	f.Size = 4

	result := u.Upload(context.Background(), []File{f}, nil)

	assert.Empty(t, result.Attachments)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], ErrFileTooLarge)
}

func TestUploader_Upload_OpenFailure(t *testing.T) {
	u := NewUploader(NewCodec(Config{}, nil), 0, nil)

	f := File{
		Name:     "gone.png",
		MimeType: "image/png",
		Size:     10,
		Open: func() (io.ReadCloser, error) {
			return nil, os.ErrNotExist
		},
	}

	result := u.Upload(context.Background(), []File{f}, nil)

	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], ErrReadFile)
}

func TestUploader_Upload_CancelledContext(t *testing.T) {
	u := NewUploader(NewCodec(Config{}, nil), 1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := u.Upload(ctx, []File{memFile("a.png", "image/png", []byte("x"))}, nil)

	assert.Empty(t, result.Attachments)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], context.Canceled)
}

func TestFileFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kata.webp")
	require.NoError(t, os.WriteFile(path, []byte("RIFF0000WEBP"), 0o600))

	f, err := FileFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "kata.webp", f.Name)
	assert.Equal(t, "image/webp", f.MimeType)
	assert.Equal(t, int64(12), f.Size)

	result := NewUploader(NewCodec(Config{}, nil), 1, nil).Upload(context.Background(), []File{f}, nil)
	require.Len(t, result.Attachments, 1)
	assert.Equal(t, int64(12), result.Attachments[0].Size)
}

func TestFileFromPath_Missing(t *testing.T) {
	_, err := FileFromPath(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, ErrReadFile)
}
