package services

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrijs2005/garden/internal/client/cache"
	"github.com/dmitrijs2005/garden/internal/client/client"
	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/netx"
	"github.com/dmitrijs2005/garden/internal/validation"
)

// MaxAvatarSize is the largest avatar file the client uploads.
const MaxAvatarSize = 5 << 20

// GardenService wraps the feed and the seed mutations. After a successful
// mutation it patches or invalidates the shared query cache so the visible
// list reflects the change without another fetch.
type GardenService struct {
	client client.Client
	store  *cache.Store
	logger logging.Logger
	http   *http.Client
}

func NewGardenService(c client.Client, store *cache.Store, l logging.Logger) *GardenService {
	return &GardenService{client: c, store: store, logger: l.With("module", "garden"), http: http.DefaultClient}
}

// Garden validates q and fetches one page. It satisfies feed.Fetcher.
func (s *GardenService) Garden(ctx context.Context, q validation.GardenQuery) (*models.Page, error) {
	if err := validation.Garden(&q); err != nil {
		return nil, err
	}
	return s.client.Garden(ctx, q)
}

// Plant creates a seed. Cached pages no longer start at the newest seed, so
// every entry is marked stale.
func (s *GardenService) Plant(ctx context.Context, text string) (*models.Seed, error) {
	if err := validation.Seed(text); err != nil {
		return nil, err
	}

	seed, err := s.client.CreateSeed(ctx, text)
	if err != nil {
		return nil, err
	}

	s.store.Invalidate()
	return seed, nil
}

// Like likes seedID and, on success, patches the cache entry of key.
func (s *GardenService) Like(ctx context.Context, key cache.QueryKey, seedID string) error {
	if err := validation.SeedID(seedID); err != nil {
		return err
	}
	if _, err := s.client.Like(ctx, seedID); err != nil {
		return err
	}

	if !s.store.Update(key, cache.Liked(seedID)) {
		s.logger.Debug(ctx, "like: query not cached", "key", key)
	}
	return nil
}

// Unlike removes the viewer's like and, on success, patches the cache entry
// of key.
func (s *GardenService) Unlike(ctx context.Context, key cache.QueryKey, seedID string) error {
	if err := validation.SeedID(seedID); err != nil {
		return err
	}
	if _, err := s.client.Unlike(ctx, seedID); err != nil {
		return err
	}

	if !s.store.Update(key, cache.Unliked(seedID)) {
		s.logger.Debug(ctx, "unlike: query not cached", "key", key)
	}
	return nil
}

// UploadAvatar uploads the image at path as the user's avatar.
func (s *GardenService) UploadAvatar(ctx context.Context, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.Size() > MaxAvatarSize {
		return common.NewValidationError("avatar", common.RuleTooLong, fmt.Sprintf("avatar must be at most %d bytes", MaxAvatarSize))
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	contentType := http.DetectContentType(body)

	url, err := s.client.CreateAvatarUpload(ctx, contentType)
	if err != nil {
		return err
	}

	if err := netx.UploadToPresignedURL(ctx, s.http, url, contentType, body); err != nil {
		return fmt.Errorf("avatar upload: %w", err)
	}

	if _, err := s.client.ConfirmAvatarUpload(ctx); err != nil {
		return fmt.Errorf("avatar confirm: %w", err)
	}

	// author avatar URLs in cached pages are outdated now
	s.store.Invalidate()
	return nil
}
