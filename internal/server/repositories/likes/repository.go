// Package likes stores (seed, user) endorsements.
package likes

import "context"

type Repository interface {
	// Create adds the like. An existing (seedID, userID) pair yields
	// common.ErrorConflict and leaves a single row in place.
	Create(ctx context.Context, seedID, userID string) error

	// Delete removes the like, or returns common.ErrorNotFound when absent.
	Delete(ctx context.Context, seedID, userID string) error
}
