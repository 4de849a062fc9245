package fs

import (
	"context"
	"os"

	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// FileWriterAdapter handles file system operations for exports
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteFile writes content to path. Exports may carry secrets, so the file
// is only readable by its owner.
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	return os.WriteFile(path, content, 0600)
}

// EnsureDirectory ensures a directory exists
func (f *FileWriterAdapter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
