package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps uploaded files as a flat directory on disk.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %q: %w", absDir, err)
	}
	return &LocalStorage{dir: absDir}, nil
}

// Dir returns the absolute upload directory, for static serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// path validates that name is a bare filename and resolves it inside the
// upload dir. Names are server-generated, but a traversal guard is kept in
// case one ever comes from elsewhere.
func (s *LocalStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid file name: %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader, size int64) error {
	dstPath, err := s.path(name)
	if err != nil {
		return err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dstPath, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to write %q: %w", dstPath, err)
	}
	return nil
}

func (s *LocalStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	fullPath, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

func (s *LocalStorage) Remove(ctx context.Context, name string) error {
	fullPath, err := s.path(name)
	if err != nil {
		return err
	}
	return os.Remove(fullPath)
}
