package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const documentExt = ".json"

// Diskv stores each document as <base>/<key>.json.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// OpenDiskv prepares a diskv store rooted at basePath.
func OpenDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Read goes to disk directly so writes by other processes are seen.
func (s *Diskv) Read(key string) ([]byte, error) {
	rc, err := s.d.ReadStream(key, true)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *Diskv) Write(key string, data []byte) error {
	return s.d.Write(key, data)
}

func (s *Diskv) BasePath() string {
	return s.basePath
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + documentExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, documentExt)
}
