// Package config handles configuration for the ECG client, including
// defaults, environment, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the ECG client.
//
// Fields:
//   - BaseURL: root address of the ECG analysis service API.
//   - RequestTimeout: per-call timeout applied by the request gateway.
//   - DatabasePath: location of the local credential database.
//   - DownloadDir: directory exported files are written to.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "ecg.db"
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
