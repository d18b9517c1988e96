// Package uploads stores profile images on a storage disk.
package uploads

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/zhaygo/backend/pkg/metrics"
	"github.com/zhaygo/backend/pkg/storage"
)

// dir is the disk directory holding every uploaded image.
const dir = "uploads"

// Store writes uploaded files with collision-free names and resolves their
// public URLs. The filename scheme is "<unix-ms>-<original-name>", so two
// uploads of the same file never clash.
type Store struct {
	disk     storage.Disk
	diskName string
	now      func() time.Time
}

// New returns a Store over the named disk.
func New(disk storage.Disk, diskName string) *Store {
	return &Store{disk: disk, diskName: diskName, now: time.Now}
}

// Save writes r to the disk and returns the stored path.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filepath.Base(originalName))
	stored := path.Join(dir, name)

	if err := s.disk.PutStream(stored, r); err != nil {
		return "", fmt.Errorf("uploads: save %s: %w", originalName, err)
	}

	metrics.UploadsTotal.WithLabelValues(s.diskName).Inc()
	return stored, nil
}

// URL resolves the public URL for a stored path. The local disk is served
// by the backend itself under /uploads; object storage serves directly.
func (s *Store) URL(stored string) string {
	if s.diskName == "local" {
		return "/" + path.Join(dir, path.Base(stored))
	}
	return s.disk.URL(stored)
}
