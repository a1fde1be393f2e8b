package users

import (
	"context"

	"github.com/dmitrijs2005/garden/internal/server/models"
)

type Repository interface {
	// Create stores a new user. A taken name yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	SetAvatarKey(ctx context.Context, userID string, key string) error
}
