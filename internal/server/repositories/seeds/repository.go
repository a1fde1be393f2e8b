// Package seeds declares the storage contract for seeds and the feed query.
package seeds

import (
	"context"

	"github.com/dmitrijs2005/garden/internal/server/models"
)

type Repository interface {
	// Create inserts seed (ID, AuthorID and Text must be set) and fills
	// CreatedAt and Author.
	Create(ctx context.Context, seed *models.Seed) (*models.Seed, error)

	// Exists reports whether a seed with id is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// Garden returns one page of the feed ordered by created_at DESC, id DESC,
	// strictly after the cursor seed when one is given.
	Garden(ctx context.Context, f models.GardenFilter) (*models.GardenPage, error)
}
