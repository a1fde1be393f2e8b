package config

import "github.com/dmitrijs2005/garden/internal/flagx"

// parseEnv overlays GARDEN_* environment variables onto cfg.
// Malformed numbers or durations panic.
func parseEnv(cfg *Config) {
	flagx.EnvString("SERVER_ADDR", &cfg.ServerEndpointAddr)
	flagx.EnvString("DATA_DIR", &cfg.DataDir)
	flagx.EnvString("LOG_LEVEL", &cfg.LogLevel)

	if err := flagx.EnvInt("PAGE_SIZE", &cfg.PageSize); err != nil {
		panic(err)
	}
	if err := flagx.EnvInt("VIEWPORT_HEIGHT", &cfg.ViewportHeight); err != nil {
		panic(err)
	}
	if err := flagx.EnvDuration("ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval); err != nil {
		panic(err)
	}
}
