// Package metadata is the client's local key/value store. The CLI keeps its
// session there so a restarted client can resume without a new login.
package metadata

import (
	"context"
)

// Session keys.
const (
	KeyUsername     = "username"
	KeyRefreshToken = "refresh_token"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
