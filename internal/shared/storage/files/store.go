package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrStorageUnavailable signals that the upload root cannot be created or
// written. Callers treat this as fatal for the current operation.
var ErrStorageUnavailable = errors.New("storage unavailable")

// allowedExtensions is the closed set of accepted upload extensions.
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"txt":  {},
	"rtf":  {},
	"ppt":  {},
	"pptx": {},
}

// Store manages the on-disk location and naming of uploaded files.
type Store struct {
	root string
	now  func() time.Time
}

// New creates a Store rooted at root. The directory is created lazily by
// EnsureRoot.
func New(root string) *Store {
	return &Store{root: root, now: time.Now}
}

// Root returns the upload root directory.
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot creates the upload root recursively. Idempotent: an existing
// directory is not an error.
func (s *Store) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// IsAllowedFile reports whether the file name carries an accepted extension.
// The check is case-insensitive and false for a missing extension.
func IsAllowedFile(fileName string) bool {
	ext := Extension(fileName)
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}

// Extension returns the lowercase extension without the dot, or "" if none.
func Extension(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Save writes the reader under the upload root. The destination name combines
// consultant id, declared type and a nanosecond timestamp so that concurrent
// uploads for the same consultant do not collide. Returns the stored path,
// the byte size and the sniffed MIME type.
func (s *Store) Save(ctx context.Context, consultantID, docType, fileName string, r io.Reader) (string, int64, string, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}
	if err := s.EnsureRoot(); err != nil {
		return "", 0, "", err
	}

	ext := Extension(fileName)
	stamp := s.now().UTC().Format("20060102T150405.000000000")
	finalName := fmt.Sprintf("%s_%s_%s.%s", consultantID, docType, stamp, ext)

	fullPath := filepath.Join(s.root, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: open file: %v", ErrStorageUnavailable, err)
	}
	defer f.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return "", 0, "", fmt.Errorf("read sniff: %w", readErr)
	}

	mimeType := http.DetectContentType(sniff[:n])

	size := int64(0)
	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return "", 0, "", fmt.Errorf("%w: write sniff: %v", ErrStorageUnavailable, err)
		}
		size += int64(n)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: write body: %v", ErrStorageUnavailable, err)
	}
	size += written

	return fullPath, size, mimeType, nil
}

// Exists reports whether the stored path still refers to a file. Any stat
// failure counts as missing, never an error.
func (s *Store) Exists(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Remove unlinks the stored file. Callers downgrade failures to warnings.
func (s *Store) Remove(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return os.Remove(path)
}
