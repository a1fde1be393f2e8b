package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/garden/internal/dbx"
	"github.com/dmitrijs2005/garden/internal/server/repositories/likes"
	"github.com/dmitrijs2005/garden/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/garden/internal/server/repositories/seeds"
	"github.com/dmitrijs2005/garden/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or a *sql.Tx, so
// services can run several of them inside one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Seeds(db dbx.DBTX) seeds.Repository
	Likes(db dbx.DBTX) likes.Repository
}
