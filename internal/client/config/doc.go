// Package config loads runtime configuration for the Garden CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or GARDEN_CONFIG.
//  3. GARDEN_* environment variables (SERVER_ADDR, PAGE_SIZE, VIEWPORT_HEIGHT,
//     DATA_DIR, ONLINE_CHECK_INTERVAL, LOG_LEVEL).
//  4. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "page_size": 10,
//	  "viewport_height": 5,
//	  "data_dir": ".garden",
//	  "online_check_interval": "3s",
//	  "log_level": "warn"
//	}
package config
