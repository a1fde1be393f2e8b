package seeds

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/garden/internal/dbx"
	"github.com/dmitrijs2005/garden/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, seed *models.Seed) (*models.Seed, error) {
	query :=
		`WITH s AS (
			INSERT INTO seeds (id, author_id, text)
			VALUES ($1, $2, $3)
			RETURNING author_id, created_at
		 )
		 SELECT s.created_at, u.name, COALESCE(u.avatar_key, '')
		 FROM s JOIN users u ON u.id = s.author_id
		 `

	author := &models.User{ID: seed.AuthorID}
	if err := r.db.QueryRowContext(ctx, query, seed.ID, seed.AuthorID, seed.Text).
		Scan(&seed.CreatedAt, &author.UserName, &author.AvatarKey); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	seed.Author = author

	return seed, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM seeds WHERE id = $1)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

// gardenQuery fetches up to $1 rows. $2 (author name), $3 (viewer id) and
// $4 (cursor id) are NULL when unused. A cursor that matches no seed makes
// the row comparison NULL, so the page comes back empty.
const gardenQuery = `
	SELECT s.id, s.text, s.created_at,
	       u.id, u.name, COALESCE(u.avatar_key, ''),
	       (SELECT COUNT(*) FROM likes l WHERE l.seed_id = s.id) AS like_count,
	       EXISTS (SELECT 1 FROM likes l WHERE l.seed_id = s.id AND l.user_id = $3::uuid) AS viewer_has_liked
	FROM seeds s
	JOIN users u ON u.id = s.author_id
	WHERE ($2::text IS NULL OR u.name = $2::text)
	  AND ($4::uuid IS NULL OR (s.created_at, s.id) < (SELECT c.created_at, c.id FROM seeds c WHERE c.id = $4::uuid))
	ORDER BY s.created_at DESC, s.id DESC
	LIMIT $1
`

// Garden reads limit+1 rows so the extra one tells whether another page
// exists without a count query.
func (r *PostgresRepository) Garden(ctx context.Context, f models.GardenFilter) (*models.GardenPage, error) {
	rows, err := r.db.QueryContext(ctx, gardenQuery,
		f.Limit+1, nullIfEmpty(f.AuthorName), nullIfEmpty(f.ViewerID), nullIfEmpty(f.Cursor))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	seeds := make([]*models.Seed, 0, f.Limit+1)
	for rows.Next() {
		s := &models.Seed{Author: &models.User{}}
		if err := rows.Scan(&s.ID, &s.Text, &s.CreatedAt,
			&s.Author.ID, &s.Author.UserName, &s.Author.AvatarKey,
			&s.LikeCount, &s.ViewerHasLiked); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		s.AuthorID = s.Author.ID
		seeds = append(seeds, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	page := &models.GardenPage{Seeds: seeds}
	if f.Limit > 0 && len(seeds) > f.Limit {
		page.Seeds = seeds[:f.Limit]
		page.NextCursor = page.Seeds[len(page.Seeds)-1].ID
	}

	return page, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
