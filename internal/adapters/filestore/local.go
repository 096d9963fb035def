package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// Compile-time interface check.
var _ ports.FileStore = (*Local)(nil)

// Local keeps files in one directory on disk. Writes go through a temp file
// and a rename so a crash never leaves a half-written file.
type Local struct {
	dir string
}

// NewLocal creates dir if needed and returns a store rooted there.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", &domain.ValidationError{Fields: map[string]string{"name": "must be a plain file name"}}
	}
	return filepath.Join(l.dir, name), nil
}

// Read implements ports.FileStore.
func (l *Local) Read(_ context.Context, name string) ([]byte, error) {
	p, err := l.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return data, err
}

// Write implements ports.FileStore.
func (l *Local) Write(_ context.Context, name string, data []byte) error {
	p, err := l.path(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(l.dir, "."+name+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// Delete implements ports.FileStore.
func (l *Local) Delete(_ context.Context, name string) error {
	p, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Name implements ports.HealthChecker.
func (l *Local) Name() string { return healthName }

// HealthCheck reports whether the directory is still there.
func (l *Local) HealthCheck(context.Context) error {
	info, err := os.Stat(l.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", l.dir)
	}
	return nil
}
