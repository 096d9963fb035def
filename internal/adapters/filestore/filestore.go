// Package filestore provides the flat-file backends for app settings: the
// local disk, process memory and an S3 bucket. ReadJSON and WriteJSON give
// typed access on top of any of them.
package filestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// healthName is the name every backend reports to the health registry.
const healthName = "settings"

// New builds the backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.SettingsConfig) (ports.FileStore, error) {
	switch cfg.Driver {
	case config.SettingsMemory:
		return NewMemory(), nil
	case config.SettingsLocal:
		return NewLocal(cfg.Dir)
	case config.SettingsS3:
		return NewS3FromConfig(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported settings driver %q", cfg.Driver)
	}
}

// ReadJSON decodes the named file into a T. A missing file yields the zero
// T and no error; content that does not decode is a *domain.DecodeError.
func ReadJSON[T any](ctx context.Context, fs ports.FileStore, name string) (T, error) {
	var v T
	data, err := fs.Read(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return v, nil
	}
	if err != nil {
		return v, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, &domain.DecodeError{Entity: name, Reason: err.Error()}
	}
	return v, nil
}

// WriteJSON encodes v and replaces the named file with it.
func WriteJSON[T any](ctx context.Context, fs ports.FileStore, name string, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &domain.SerializationError{Entity: name, Reason: err.Error()}
	}
	if err := fs.Write(ctx, name, data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
