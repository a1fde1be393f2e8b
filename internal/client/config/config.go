package config

import "time"

// Config holds runtime settings for the Garden CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - PageSize: number of seeds requested per garden page.
//   - ViewportHeight: number of seeds shown on screen at once.
//   - DataDir: directory holding the local SQLite session store.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	PageSize            int
	ViewportHeight      int
	DataDir             string
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.PageSize = 10
	c.ViewportHeight = 5
	c.DataDir = ".garden"
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), GARDEN_* environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
