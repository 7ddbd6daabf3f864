package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a file
type FileInfo struct {
	Path         string
	RelativePath string
	Name         string
	Size         int64
	ModTime      time.Time
	IsDir        bool
}

// Backend defines the read-only filesystem surface the scanner works
// against. The tool never mutates files, so no write operations exist.
type Backend interface {
	// List returns all regular files under the backend root, recursively,
	// in enumeration order. Entries carry paths only; callers stat each
	// file as they process it.
	List(ctx context.Context) ([]FileInfo, error)

	// Read opens a file for reading
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns file metadata
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Exists checks if a file or directory exists
	Exists(ctx context.Context, path string) (bool, error)

	// Close releases any resources held by the backend
	Close() error
}
