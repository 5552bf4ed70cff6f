package config

import "time"

// Config holds runtime settings for the authctl CLI.
//
// Fields:
//   - ServerURL: base URL of the auth HTTP API.
//   - SessionDBPath: sqlite file that keeps the last login.
//   - RequestTimeout: per-request deadline for API calls.
//   - OnlineCheckInterval: period of the background GET /health probe.
type Config struct {
	ServerURL           string
	SessionDBPath       string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with defaults matching a local server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:4000"
	c.SessionDBPath = "authctl.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
