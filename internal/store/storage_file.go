package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-course-sheet/internal/logger"
)

const slotFileExt = ".json"

// fileSlotStorage keeps each slot in its own file under dir. Writes go to a
// temporary file that is synced and renamed over the old one, so a reader
// never observes a partial value.
type fileSlotStorage struct {
	dir    string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileSlotStorage returns a [SlotStorage] storing slots as files in dir,
// creating dir if needed.
func NewFileSlotStorage(dir string, logger *logger.Logger) (SlotStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewFileSlotStorage").Str("dir", dir).Msg("failed to create slot dir")
		return nil, classify(fileErrorClassifier{}, errors.New("create slot dir"), err)
	}

	return &fileSlotStorage{dir: dir, logger: logger}, nil
}

func (s *fileSlotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "fileSlotStorage.Get").Str("path", path).Msg("failed to read slot file")
		return nil, classify(fileErrorClassifier{}, errors.New("read slot file"), err)
	}

	return data, nil
}

func (s *fileSlotStorage) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = writeFileAtomic(path, value, 0o600); err != nil {
		s.logger.Err(err).
			Str("func", "fileSlotStorage.Put").
			Str("path", path).
			Int("size", len(value)).
			Msg("failed to write slot file")
		return classify(fileErrorClassifier{}, errors.New("write slot file"), err)
	}

	return nil
}

func (s *fileSlotStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Err(err).Str("func", "fileSlotStorage.Delete").Str("path", path).Msg("failed to remove slot file")
		return classify(fileErrorClassifier{}, errors.New("remove slot file"), err)
	}

	return nil
}

func (s *fileSlotStorage) Close() error {
	return nil
}

func (s *fileSlotStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: invalid slot key %q", ErrStorageUnavailable, key)
	}
	return filepath.Join(s.dir, key+slotFileExt), nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return err
	}
	tmpName = ""

	// best effort: persist the rename itself
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}

// fileErrorClassifier reports a full disk or an exhausted user quota as
// [QuotaExceeded].
type fileErrorClassifier struct{}

func (fileErrorClassifier) Classify(err error) ErrorClassification {
	if isNoSpace(err) {
		return QuotaExceeded
	}
	return Unavailable
}
