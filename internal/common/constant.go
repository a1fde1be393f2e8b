package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Feed page size bounds shared by client and server.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Seed text length bounds, in characters.
const (
	SeedTextMinLength = 10
	SeedTextMaxLength = 340
)
