// Package fsx abstracts blob storage for uploaded files.
package fsx

import (
	"context"
	"io"
)

// FileReader reads stored files
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter stores files
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileStream(ctx context.Context, path string, r io.Reader) error
	DeleteFile(ctx context.Context, path string) error
}

// FileSystem is a blob store addressed by slash separated paths
type FileSystem interface {
	FileReader
	FileWriter

	// Join builds a path from segments
	Join(elem ...string) string

	// URL returns the public URL of a stored path
	URL(path string) string
}
