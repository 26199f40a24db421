package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile    = errors.New("cannot store an empty file")
	ErrOutsideStore = errors.New("cannot store file outside of the uploads directory")
)

// DiskStore writes uploaded pictures into a single uploads directory and
// returns public URLs under baseURL + "/uploads/".
type DiskStore struct {
	Dir     string
	BaseURL string
}

// Store saves the upload under a timestamp+uuid prefixed name. The resolved
// destination must stay directly inside the uploads directory; a name that
// escapes it is rejected before a single byte is written.
func (s *DiskStore) Store(file io.Reader, size int64, originalName string) (string, error) {
	if size == 0 {
		return "", ErrEmptyFile
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d_%s_%s", time.Now().UnixMilli(), uuid.NewString(), originalName)

	absDir, err := filepath.Abs(s.Dir)
	if err != nil {
		return "", err
	}
	dest := filepath.Clean(filepath.Join(absDir, filename))
	if filepath.Dir(dest) != absDir {
		return "", ErrOutsideStore
	}

	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if written == 0 {
		os.Remove(dest)
		return "", ErrEmptyFile
	}

	return strings.TrimRight(s.BaseURL, "/") + "/uploads/" + filepath.Base(dest), nil
}
