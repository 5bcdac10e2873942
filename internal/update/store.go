package update

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/raphi011/supgit/internal/cache"
	"github.com/raphi011/supgit/internal/storage"
)

// Stamp records the outcome of the last release check.
type Stamp struct {
	CheckedAt time.Time `json:"checked_at"`
	Latest    string    `json:"latest,omitempty"` // newest version seen, e.g. "v1.4.0"
}

// Store persists the Stamp between invocations.
type Store interface {
	// Init prepares the backing storage.
	Init() error
	// Read returns the zero Stamp when nothing has been recorded.
	Read() (Stamp, error)
	Write(Stamp) error
}

// FileStore keeps the stamp as JSON in a directory, guarded by a lock file.
type FileStore struct {
	dir string
}

// NewFileStore returns a store under dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultStore returns a store in the user cache directory.
func DefaultStore() (*FileStore, error) {
	dir, err := storage.Dir()
	if err != nil {
		return nil, err
	}
	return NewFileStore(dir), nil
}

func (s *FileStore) path() string { return filepath.Join(s.dir, "last_update_check.json") }

func (s *FileStore) lock() *cache.FileLock {
	return cache.NewFileLock(filepath.Join(s.dir, ".update.lock"))
}

// Init creates the store directory.
func (s *FileStore) Init() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Read loads the stamp. A missing or corrupt file reads as the zero Stamp.
func (s *FileStore) Read() (Stamp, error) {
	var st Stamp
	err := storage.LoadJSON(s.path(), &st)
	switch {
	case err == nil:
		return st, nil
	case errors.Is(err, os.ErrNotExist):
		return Stamp{}, nil
	case isIOError(err):
		return Stamp{}, err
	default:
		// Corrupted - start fresh
		return Stamp{}, nil
	}
}

// Write replaces the stamp while holding the lock.
func (s *FileStore) Write(st Stamp) error {
	return s.lock().With(func() error {
		return storage.SaveJSON(s.path(), st)
	})
}

func isIOError(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr)
}
