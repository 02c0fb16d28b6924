// Package storage provides the local-disk implementation of the upload
// file store. Files land under a single directory which the router serves
// statically at /uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes uploaded bytes to dir and returns paths of the form
// uploads/<prefix>-<uuid><ext>. The uuid keeps paths unique even when one
// employee uploads several images.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures dir exists and returns a store writing into it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save streams r to disk under a generated unique name. The original name
// contributes only its extension.
func (s *LocalStore) Save(_ context.Context, prefix, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), filepath.Ext(originalName))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "uploads/" + name, nil
}
