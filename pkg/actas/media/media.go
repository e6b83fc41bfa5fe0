// Package media stores uploaded files under a root directory with
// collision-free names.
package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps a single uploaded file
const MaxUploadSize = 20 << 20

// ErrTooLarge is returned for uploads over MaxUploadSize
var ErrTooLarge = fmt.Errorf("file exceeds %d bytes", MaxUploadSize)

// ErrInvalidPath is returned for stored paths that escape the root
var ErrInvalidPath = errors.New("invalid media path")

// Store saves files below Root. Stored paths are slash-separated and
// relative to Root, so they can be served under /media as-is.
type Store struct {
	Root string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "media"
	}
	return &Store{Root: dir}
}

// Save copies an upload to subdir/<uuid><ext> and returns that relative path
func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	rel := path.Join(subdir, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	dst := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", rel, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return rel, nil
}

// Path maps a stored relative path to its location on disk
func (s *Store) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// Open returns the on-disk path of rel after checking it stays under Root
func (s *Store) Open(rel string) (string, error) {
	clean := path.Clean("/" + rel)
	if clean == "/" || clean != "/"+rel {
		return "", ErrInvalidPath
	}
	return s.Path(rel), nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	if err := os.Remove(s.Path(rel)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
