// Package services contains application services for the Garden client.
// This file defines the authentication service: register, login, session
// resume from local metadata, and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/garden/internal/client/client"
	"github.com/dmitrijs2005/garden/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/cryptox"
	"github.com/dmitrijs2005/garden/internal/dbx"
	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/validation"
)

const saltLength = 32

// persistTimeout bounds the metadata write done from the token callback,
// which runs without a caller context.
const persistTimeout = 5 * time.Second

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new user on the server.
//   - Login: authenticate and persist the session locally.
//   - Resume: restore the persisted session; returns the user name.
//   - Logout: forget the tokens and wipe the local session.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	Resume(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService binds the service to the API client and the local DB.
// Every refresh token the client receives from now on is persisted.
func NewAuthService(c client.Client, db *sql.DB, l logging.Logger) AuthService {
	a := &authService{client: c, db: db, logger: l.With("module", "auth")}
	c.OnTokensRefreshed(a.persistRefreshToken)
	return a
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) persistRefreshToken(token string) {
	if token == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := a.getMetadataRepo(a.db).Set(ctx, metadata.KeyRefreshToken, []byte(token)); err != nil {
		a.logger.Error(ctx, "persist refresh token", "error", err)
	}
}

// Register creates a new account on the server. It generates a random salt,
// derives a key from the password and sends salt and verifier.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if err := validation.Username(username); err != nil {
		return err
	}

	salt := common.GenerateRandByteArray(saltLength)
	verifier := cryptox.VerifierFor(password, salt)

	return a.client.Register(ctx, username, salt, verifier)
}

// Login fetches the user's salt, proves knowledge of the password with the
// derived verifier and saves the session (username, refresh token).
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	if err := validation.Username(username); err != nil {
		return err
	}

	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	if err := a.client.Login(ctx, username, cryptox.VerifierFor(password, salt)); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, username, a.client.RefreshToken()); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) saveSession(ctx context.Context, username, refreshToken string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		if err := repo.Set(ctx, metadata.KeyUsername, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, []byte(refreshToken))
	})
}

// Resume restores the session saved by a previous Login. It returns
// client.ErrLocalDataNotAvailable when nothing is saved. A refresh token the
// server no longer accepts wipes the saved session.
func (a *authService) Resume(ctx context.Context) (string, error) {
	repo := a.getMetadataRepo(a.db)

	username, err := repo.Get(ctx, metadata.KeyUsername)
	if err != nil {
		return "", err
	}
	token, err := repo.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return "", err
	}
	if len(username) == 0 || len(token) == 0 {
		return "", client.ErrLocalDataNotAvailable
	}

	if err := a.client.Resume(ctx, string(token)); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			if cerr := repo.Clear(ctx); cerr != nil {
				a.logger.Warn(ctx, "clear stale session", "error", cerr)
			}
		}
		return "", err
	}
	return string(username), nil
}

// Logout forgets the tokens and wipes the saved session.
func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()
	return a.getMetadataRepo(a.db).Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
