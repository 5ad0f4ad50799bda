package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
	"github.com/MKhiriev/go-course-sheet/models"
)

// DefaultConcurrency is the number of files read at the same time when the
// uploader is not configured otherwise.
const DefaultConcurrency = 4

// sniffLen is the number of leading bytes used to detect a file's type.
const sniffLen = 512

// File is one user-selected file offered for upload.
type File struct {
	Name     string
	MimeType string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// FileFromPath describes the file at path. The type is detected from the
// extension, then from the first bytes of the file.
func FileFromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, newValidationError(filepath.Base(path), fmt.Errorf("%w: %v", ErrReadFile, err))
	}
	if info.IsDir() {
		return File{}, newValidationError(filepath.Base(path), fmt.Errorf("%w: is a directory", ErrReadFile))
	}

	name := filepath.Base(path)
	mimeType := DetectType(name, nil)
	if mimeType == "" {
		mimeType = DetectType(name, readHead(path))
	}

	return File{
		Name:     name,
		MimeType: mimeType,
		Size:     info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

func readHead(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, _ := io.ReadFull(f, head)
	return head[:n]
}

// UploadResult collects the outcome of a batch upload.
type UploadResult struct {
	// Attachments holds the accepted files in completion order.
	Attachments []models.Attachment
	// Errors holds one *ValidationError per rejected file.
	Errors []error
}

// Uploader converts batches of files into inline attachments.
type Uploader struct {
	codec       *Codec
	concurrency int
	logger      *logger.Logger
}

// NewUploader builds an uploader reading at most concurrency files at once.
func NewUploader(codec *Codec, concurrency int, log *logger.Logger) *Uploader {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Uploader{codec: codec, concurrency: concurrency, logger: log}
}

// Upload validates and encodes files concurrently. A rejected file never
// aborts the batch: its error is collected and the remaining files are still
// processed. onAttachment, if non-nil, is called once per accepted file as
// soon as it is ready; calls are serialized.
//
// Cancelling ctx stops files that have not started reading yet; they are
// reported with ctx's error.
func (u *Uploader) Upload(ctx context.Context, files []File, onAttachment func(models.Attachment)) UploadResult {
	var (
		mu     sync.Mutex
		result UploadResult
	)

	g := new(errgroup.Group)
	g.SetLimit(u.concurrency)

	for _, f := range files {
		g.Go(func() error {
			var (
				att models.Attachment
				err error
			)
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = newValidationError(f.Name, ctxErr)
			} else {
				att, err = u.read(f)
			}

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				u.logger.Warn().Err(err).Str("file", f.Name).Msg("file rejected")
				result.Errors = append(result.Errors, err)
				return nil
			}

			result.Attachments = append(result.Attachments, att)
			if onAttachment != nil {
				onAttachment(att)
			}
			return nil
		})
	}
	_ = g.Wait()

	u.logger.Debug().
		Int("accepted", len(result.Attachments)).
		Int("rejected", len(result.Errors)).
		Msg("upload batch finished")

	return result
}

func (u *Uploader) read(f File) (models.Attachment, error) {
	if _, err := u.codec.Validate(f.Name, f.MimeType, f.Size); err != nil {
		return models.Attachment{}, err
	}
	if f.Open == nil {
		return models.Attachment{}, newValidationError(f.Name, ErrReadFile)
	}

	rc, err := f.Open()
	if err != nil {
		return models.Attachment{}, newValidationError(f.Name, fmt.Errorf("%w: %v", ErrReadFile, err))
	}
	defer rc.Close()

	// the declared size may lie; never read past the cap
	data, err := io.ReadAll(io.LimitReader(rc, u.codec.MaxSize()+1))
	if err != nil {
		return models.Attachment{}, newValidationError(f.Name, fmt.Errorf("%w: %v", ErrReadFile, err))
	}

	return u.codec.Encode(f.Name, f.MimeType, data)
}
