package ports

import "context"

// FileStore reads and writes whole named files. It backs the settings
// that live outside the local store.
type FileStore interface {
	HealthChecker

	// Read returns the file's content. A missing file is domain.ErrNotFound.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the file's content.
	Write(ctx context.Context, name string, data []byte) error

	// Delete removes the file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
}
