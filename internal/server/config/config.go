// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables (with .env support) and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the auth server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - DatabaseDSN: store DSN; the scheme picks the backend (mongodb, postgres, memory).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - CORSAllowedOrigins: comma-separated list of allowed origins, "*" for any.
//   - LogLevel: debug, info, warn or error.
//   - HealthCheckInterval: how often the store is pinged for the health status.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrHTTP    string
	EndpointAddrGRPC    string
	DatabaseDSN         string
	SecretKey           string
	CORSAllowedOrigins  string
	LogLevel            string
	HealthCheckInterval time.Duration
	ShutdownTimeout     time.Duration
}

// LoadDefaults populates Config with development defaults. SecretKey is left
// empty on purpose; it must come from the environment or a flag.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":4000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "mongodb://127.0.0.1:27017/scalable-login"
	c.SecretKey = ""
	c.CORSAllowedOrigins = "*"
	c.LogLevel = "info"
	c.HealthCheckInterval = 10 * time.Second
	c.ShutdownTimeout = 10 * time.Second
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is required (JWT_SECRET or -s)"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is required"))
	}
	if c.EndpointAddrHTTP == "" {
		errs = append(errs, errors.New("HTTP address is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
