// Package config loads and validates the settings shared by syncd and
// syncctl. Layers, lowest first:
//
//	defaults → base.yaml → {profile}.yaml → STORESYNC_* → WithOverride
package config

import "time"

// Log output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Client transport modes.
const (
	ModeDirect  = "direct"
	ModeJetpack = "jetpack"
)

// Local storage drivers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Settings file drivers.
const (
	SettingsLocal  = "local"
	SettingsMemory = "memory"
	SettingsS3     = "s3"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Settings  SettingsConfig  `koanf:"settings"`
	Dispatch  DispatchConfig  `koanf:"dispatch"`
	Stores    StoresConfig    `koanf:"stores"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds the backend transport settings. The transport never
// retries, so there is no retry policy here. SiteID is the default site for
// callers that do not name one.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Mode           string               `koanf:"mode"`
	SiteID         int64                `koanf:"site_id"`
	AuthToken      string               `koanf:"auth_token"`
	Timeout        time.Duration        `koanf:"timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StorageConfig selects where the local store persists its snapshot.
type StorageConfig struct {
	Driver string    `koanf:"driver"`
	SQL    SQLConfig `koanf:"sql"`
}

// SQLConfig holds the database connection for the sqlite and postgres drivers.
type SQLConfig struct {
	DSN string `koanf:"dsn"`
}

// SettingsConfig selects the backend for file-backed app settings.
type SettingsConfig struct {
	Driver string   `koanf:"driver"`
	Dir    string   `koanf:"dir"`
	S3     S3Config `koanf:"s3"`
}

// S3Config locates the bucket holding settings files.
type S3Config struct {
	Bucket    string `koanf:"bucket"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
	PathStyle bool   `koanf:"path_style"`
}

// DispatchConfig controls dispatcher behavior.
type DispatchConfig struct {
	// Strict makes dispatching an unregistered action kind panic.
	Strict bool `koanf:"strict"`
}

// StoresConfig controls sync orchestration.
type StoresConfig struct {
	// SerializeScopes holds a per-scope lock from fetch to commit so that
	// overlapping syncs of one scope commit in dispatch order.
	SerializeScopes bool `koanf:"serialize_scopes"`
}
