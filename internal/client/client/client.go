package client

import (
	"context"

	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/validation"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) error
	Resume(ctx context.Context, refreshToken string) error
	Logout()
	RefreshToken() string
	OnTokensRefreshed(fn func(refreshToken string))
	Ping(ctx context.Context) error
	Garden(ctx context.Context, q validation.GardenQuery) (*models.Page, error)
	CreateSeed(ctx context.Context, text string) (*models.Seed, error)
	Like(ctx context.Context, seedID string) (string, error)
	Unlike(ctx context.Context, seedID string) (string, error)
	CreateAvatarUpload(ctx context.Context, contentType string) (string, error)
	ConfirmAvatarUpload(ctx context.Context) (string, error)
}
