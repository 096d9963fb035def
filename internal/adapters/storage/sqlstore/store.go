// Package sqlstore persists local store snapshots in a SQL database, one
// row per table. SQLite (pure Go, no cgo) and PostgreSQL are supported.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
)

// Compile-time interface check.
var _ storage.Persister = (*Store)(nil)

type dialect struct {
	driver  string
	schema  string
	upsert  string
	selects string
}

var dialects = map[string]dialect{
	config.StorageSQLite: {
		driver: "sqlite",
		schema: `CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`,
		upsert: `INSERT INTO snapshots(name, payload) VALUES(?, ?)
			ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		selects: `SELECT name, payload FROM snapshots`,
	},
	config.StoragePostgres: {
		driver: "pgx",
		schema: `CREATE TABLE IF NOT EXISTS snapshots (
			name TEXT PRIMARY KEY,
			payload BYTEA NOT NULL
		)`,
		upsert: `INSERT INTO snapshots(name, payload) VALUES($1, $2)
			ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		selects: `SELECT name, payload FROM snapshots`,
	},
}

// Store is a storage.Persister backed by database/sql.
type Store struct {
	db *sql.DB
	d  dialect
}

// Open connects to the database for driver ("sqlite" or "postgres") and
// creates the snapshot table. For sqlite, dsn is a file path whose parent
// directory is created if needed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
	if driver == config.StorageSQLite && !strings.HasPrefix(dsn, "file::memory:") && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == config.StorageSQLite {
		// One connection keeps an in-memory database alive and serializes writers.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &Store{db: db, d: d}, nil
}

// Load implements storage.Persister.
func (s *Store) Load(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, s.d.selects)
	if err != nil {
		return nil, fmt.Errorf("select snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			name    string
			payload []byte
		)
		if err := rows.Scan(&name, &payload); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out[name] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

// Save implements storage.Persister. All tables are written in one
// database transaction.
func (s *Store) Save(ctx context.Context, tables map[string][]byte) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for name, payload := range tables {
		if _, err := tx.ExecContext(ctx, s.d.upsert, name, payload); err != nil {
			return fmt.Errorf("upsert %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Ping implements storage.Persister.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements storage.Persister.
func (s *Store) Close() error {
	return s.db.Close()
}
