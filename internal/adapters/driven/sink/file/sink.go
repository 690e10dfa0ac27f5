// Package file provides an export sink writing to a local directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/contacts-cli/internal/core/domain"
	"github.com/custodia-labs/contacts-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ExportSink = (*Sink)(nil)

// Sink writes exports as files under a directory.
type Sink struct {
	dir string
}

// New creates a sink rooted at dir. The directory is created on first write.
func New(dir string) *Sink {
	return &Sink{dir: dir}
}

// Dir returns the destination directory.
func (s *Sink) Dir() string {
	return s.dir
}

// Write stores the payload at dir/key and returns the file path. The file
// is written to a temporary name and renamed so readers never observe a
// partial export.
func (s *Sink) Write(ctx context.Context, req driven.ExportRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := filepath.Clean(filepath.FromSlash(req.Key))
	if req.Key == "" || filepath.IsAbs(key) || key == ".." || strings.HasPrefix(key, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: export key %q", domain.ErrInvalidInput, req.Key)
	}

	path := filepath.Join(s.dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(req.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return "", fmt.Errorf("setting export permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("renaming export file: %w", err)
	}
	return path, nil
}
