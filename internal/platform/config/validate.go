package config

import (
	"errors"
	"fmt"
	"slices"
)

// problems collects every invalid key so one run reports them all.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems

	p.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.check(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, FormatJSON, FormatText)

	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Storage.validate(&p)
	c.Settings.validate(&p)

	return errors.Join(p...)
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.oneOf("client.mode", cl.Mode, ModeDirect, ModeJetpack)
	p.check(cl.SiteID >= 0, "client.site_id must not be negative, got %d", cl.SiteID)
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be at least 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond <= 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be at least 1 when limiting, got %d", cl.RateLimit.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty for the otlp exporter")
}

func (s *StorageConfig) validate(p *problems) {
	p.oneOf("storage.driver", s.Driver, StorageMemory, StorageSQLite, StoragePostgres)
	if s.Driver == StorageSQLite || s.Driver == StoragePostgres {
		p.check(s.SQL.DSN != "", "storage.sql.dsn must not be empty for driver %q", s.Driver)
	}
}

func (s *SettingsConfig) validate(p *problems) {
	p.oneOf("settings.driver", s.Driver, SettingsLocal, SettingsMemory, SettingsS3)
	switch s.Driver {
	case SettingsLocal:
		p.check(s.Dir != "", "settings.dir must not be empty for driver local")
	case SettingsS3:
		p.check(s.S3.Bucket != "", "settings.s3.bucket must not be empty for driver s3")
		p.check(s.S3.Region != "", "settings.s3.region must not be empty for driver s3")
	}
}
