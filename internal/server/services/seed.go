package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/dbx"
	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/server/models"
	"github.com/dmitrijs2005/garden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/garden/internal/validation"
	"github.com/google/uuid"
)

// SeedService implements the feed query and the seed mutations.
type SeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	avatars     AvatarURLs
	logger      logging.Logger
	newID       func() string
}

// NewSeedService constructs a SeedService. avatars may be nil, in which case
// feed authors carry no avatar URL.
func NewSeedService(db *sql.DB, m repomanager.RepositoryManager, avatars AvatarURLs, l logging.Logger) *SeedService {
	return &SeedService{
		db:          db,
		repomanager: m,
		avatars:     avatars,
		logger:      l.With("module", "seed_service"),
		newID:       uuid.NewString,
	}
}

// Garden returns one page of seeds for viewerID ("" for anonymous viewers).
// The query is validated (and its limit defaulted) first.
func (s *SeedService) Garden(ctx context.Context, viewerID string, q validation.GardenQuery) (*models.GardenPage, error) {
	if err := validation.Garden(&q); err != nil {
		return nil, err
	}

	f := models.GardenFilter{
		Limit:    q.Limit,
		Cursor:   q.Cursor,
		ViewerID: viewerID,
	}
	if q.Where != nil && q.Where.Author != nil {
		f.AuthorName = q.Where.Author.Name
	}

	page, err := s.repomanager.Seeds(s.db).Garden(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("garden query: %w", err)
	}

	s.attachAvatarURLs(ctx, page.Seeds)

	return page, nil
}

// attachAvatarURLs presigns each distinct author avatar once per page.
// A failed presign leaves that author without a URL.
func (s *SeedService) attachAvatarURLs(ctx context.Context, seeds []*models.Seed) {
	if s.avatars == nil {
		return
	}

	urls := make(map[string]string)
	for _, seed := range seeds {
		if seed.Author == nil || seed.Author.AvatarKey == "" {
			continue
		}
		key := seed.Author.AvatarKey
		url, ok := urls[key]
		if !ok {
			var err error
			url, err = s.avatars.GetURL(ctx, key)
			if err != nil {
				s.logger.Warn(ctx, "avatar presign failed", "key", key, "error", err)
			}
			urls[key] = url
		}
		seed.Author.AvatarURL = url
	}
}

// Create plants a new seed authored by userID.
func (s *SeedService) Create(ctx context.Context, userID string, text string) (*models.Seed, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	if err := validation.Seed(text); err != nil {
		return nil, err
	}

	seed := &models.Seed{ID: s.newID(), AuthorID: userID, Text: text}
	seed, err := s.repomanager.Seeds(s.db).Create(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("error creating seed: %w", err)
	}

	s.attachAvatarURLs(ctx, []*models.Seed{seed})

	s.logger.Info(ctx, "seed planted", "seed_id", seed.ID, "author_id", userID)
	return seed, nil
}

// Like records that userID likes seedID and returns the liker's id.
// Unknown seeds yield ErrorNotFound and repeated likes ErrorConflict.
func (s *SeedService) Like(ctx context.Context, userID string, seedID string) (string, error) {
	if userID == "" {
		return "", common.ErrorUnauthorized
	}
	if err := validation.SeedID(seedID); err != nil {
		return "", err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.ensureSeed(ctx, tx, seedID); err != nil {
			return err
		}
		return s.repomanager.Likes(tx).Create(ctx, seedID, userID)
	})
	if err != nil {
		return "", fmt.Errorf("like seed %s: %w", seedID, err)
	}

	s.logger.Debug(ctx, "seed liked", "seed_id", seedID, "user_id", userID)
	return userID, nil
}

// Unlike removes the like of userID on seedID and returns the liker's id.
// Unknown seeds and missing likes both yield ErrorNotFound.
func (s *SeedService) Unlike(ctx context.Context, userID string, seedID string) (string, error) {
	if userID == "" {
		return "", common.ErrorUnauthorized
	}
	if err := validation.SeedID(seedID); err != nil {
		return "", err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.ensureSeed(ctx, tx, seedID); err != nil {
			return err
		}
		return s.repomanager.Likes(tx).Delete(ctx, seedID, userID)
	})
	if err != nil {
		return "", fmt.Errorf("unlike seed %s: %w", seedID, err)
	}

	s.logger.Debug(ctx, "seed unliked", "seed_id", seedID, "user_id", userID)
	return userID, nil
}

func (s *SeedService) ensureSeed(ctx context.Context, tx dbx.DBTX, seedID string) error {
	ok, err := s.repomanager.Seeds(tx).Exists(ctx, seedID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
