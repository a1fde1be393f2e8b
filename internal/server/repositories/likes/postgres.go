package likes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, seedID, userID string) error {
	query :=
		`INSERT INTO likes (seed_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (seed_id, user_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, seedID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, seedID, userID string) error {
	query :=
		`DELETE FROM likes
		 WHERE seed_id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, seedID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
