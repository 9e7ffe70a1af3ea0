package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage persists the raw uploaded files (CFDI XML and evidence). The
// parsed/derived records live in the collection stores; this layer only
// keeps the original bytes.
type Storage interface {
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// LocalStorage writes uploads under a directory on disk. Default backend;
// MinIO takes over when configured.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) path(key string) string {
	// flatten the key so callers cannot escape the upload dir
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *LocalStorage) Save(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	f, err := os.Create(s.path(key))
	if err != nil {
		return fmt.Errorf("create upload %s: %w", key, err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		return fmt.Errorf("write upload %s: %w", key, err)
	}
	return f.Close()
}

func (s *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(s.path(key))
}
