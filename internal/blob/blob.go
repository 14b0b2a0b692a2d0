// Package blob stores uploaded binaries. The store is a collaborator the
// workflows only know by interface; the disk implementation writes under a
// single root that the HTTP layer serves back at /uploads.
package blob

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrBadName = errors.New("invalid file name")

type Store interface {
	// Save writes the content under name and returns the stored path
	// relative to the store root.
	Save(name string, r io.Reader) (string, error)
}

type DiskStore struct {
	Root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Root: root}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	// Same traversal rules as the serving side: no dot-dot, no absolute paths.
	clean := filepath.Clean(name)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) || strings.ContainsRune(clean, 0) {
		return "", ErrBadName
	}

	full := filepath.Join(s.Root, clean)
	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(full)
		return "", err
	}
	return clean, nil
}
