// Package storage persists uploaded files on the local filesystem and maps
// them to public URLs. File writes are independent per file and not
// transactional with any database write.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads/"

// Disk stores uploads in a single directory under random names.
type Disk struct {
	dir string
}

// NewDisk creates the upload directory if needed and returns the store.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// Save writes the payload under a random filename that keeps the original
// extension, and returns that filename. Collisions are probabilistically
// negligible and not checked.
func (d *Disk) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)

	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return name, nil
}

// Dir is the directory files are written to, for static serving.
func (d *Disk) Dir() string {
	return d.dir
}

// PublicPath maps a stored filename to its public URL path.
func PublicPath(filename string) string {
	return PublicPrefix + filename
}
