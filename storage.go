package assetgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirStorage writes images below a local directory.
type DirStorage struct {
	Root string
}

// Ensure DirStorage implements Storage.
var _ Storage = (*DirStorage)(nil)

// NewDirStorage returns a DirStorage rooted at root.
func NewDirStorage(root string) *DirStorage {
	return &DirStorage{Root: root}
}

// Prepare creates the given subdirectories under the root if they are missing.
func (s *DirStorage) Prepare(dirs ...string) error {
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(s.Root, filepath.FromSlash(d)), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}
	return nil
}

// SaveFile writes data to root/path, replacing any existing file, and returns the full path.
func (s *DirStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImageData
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := writeFile(full, data); err != nil {
		return "", err
	}
	return full, nil
}

// writeFile creates or truncates name and writes data to it. The handle is
// closed on every path and a failed close is reported.
func writeFile(name string, data []byte) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// GetMIMEType guesses an image MIME type from a file extension.
func GetMIMEType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
