package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults is the bottom layer of Load. Every key Config decodes appears
// here so that environment variables can reach keys no YAML file sets.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": FormatJSON,

		"client.base_url":                        "http://localhost:8081",
		"client.mode":                            ModeDirect,
		"client.site_id":                         0,
		"client.auth_token":                      "",
		"client.timeout":                         "30s",
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "storesync",

		"storage.driver":  StorageMemory,
		"storage.sql.dsn": "",

		"settings.driver":        SettingsLocal,
		"settings.dir":           "var/settings",
		"settings.s3.bucket":     "",
		"settings.s3.region":     "us-east-1",
		"settings.s3.endpoint":   "",
		"settings.s3.path_style": false,

		"dispatch.strict": false,

		"stores.serialize_scopes": false,
	}
}
