package config

import (
	"time"

	"github.com/dmitrijs2005/garden/internal/flagx"
)

// parseEnv overlays GARDEN_* environment variables onto config.
// Malformed durations panic, like a malformed JSON file does.
func parseEnv(config *Config) {
	flagx.EnvString("GRPC_ADDR", &config.EndpointAddrGRPC)
	flagx.EnvString("DATABASE_DSN", &config.DatabaseDSN)
	flagx.EnvString("SECRET_KEY", &config.SecretKey)
	flagx.EnvString("S3_ROOT_USER", &config.S3RootUser)
	flagx.EnvString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	flagx.EnvString("S3_BUCKET", &config.S3Bucket)
	flagx.EnvString("S3_REGION", &config.S3Region)
	flagx.EnvString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	flagx.EnvString("LOG_LEVEL", &config.LogLevel)

	for name, dst := range map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":  &config.AccessTokenValidityDuration,
		"REFRESH_TOKEN_TTL": &config.RefreshTokenValidityDuration,
		"AVATAR_URL_TTL":    &config.AvatarURLValidityDuration,
	} {
		if err := flagx.EnvDuration(name, dst); err != nil {
			panic(err)
		}
	}
}
