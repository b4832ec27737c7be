package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required"`
	// ApiKey is the secret key required to access the API.
	// An empty key leaves the API open.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheTTLSeconds is how long a rendered page is reused before re-rendering.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
	// MetricsEnabled exposes Prometheus metrics at /metrics.
	MetricsEnabled bool `mapstructure:"metrics_enabled" default:"true"`
}

// CacheTTL returns the render cache lifetime. Negative values disable caching.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
