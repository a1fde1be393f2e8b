package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/garden/internal/client/client"
	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/validation"
	"github.com/stretchr/testify/require"
)

var dbSeq atomic.Int64

// setupDB opens a private in-memory SQLite store with the client migrations.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	CloseErr    error
	RegisterErr error

	GetSaltRet []byte
	GetSaltErr error

	LoginErr    error
	LoginTokens string

	ResumeErr    error
	ResumeTokens string

	PingErr error

	GardenRet *models.Page
	GardenErr error

	CreateRet *models.Seed
	CreateErr error

	LikeErr   error
	UnlikeErr error

	AvatarURL string
	AvatarErr error

	ConfirmErr error
	Confirms   int

	refresh   string
	onRefresh func(string)
	loggedOut bool

	LastRegisterUser     string
	LastRegisterSalt     []byte
	LastRegisterVerifier []byte
	LastGetSaltUser      string
	LastLoginUser        string
	LastLoginVerifier    []byte
	LastResumeToken      string
	LastQuery            validation.GardenQuery
	LastText             string
	LastLiked            string
	LastUnliked          string
	LastContentType      string
	Calls                int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) setRefresh(token string) {
	f.refresh = token
	if f.onRefresh != nil {
		f.onRefresh(token)
	}
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, verifier []byte) error {
	f.Calls++
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterVerifier = append([]byte(nil), verifier...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	f.Calls++
	f.LastGetSaltUser = username
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, verifier []byte) error {
	f.Calls++
	f.LastLoginUser = username
	f.LastLoginVerifier = append([]byte(nil), verifier...)
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.setRefresh(f.LoginTokens)
	return nil
}

func (f *fakeClient) Resume(ctx context.Context, refreshToken string) error {
	f.Calls++
	f.LastResumeToken = refreshToken
	if f.ResumeErr != nil {
		return f.ResumeErr
	}
	f.setRefresh(f.ResumeTokens)
	return nil
}

func (f *fakeClient) Logout() {
	f.loggedOut = true
	f.refresh = ""
}

func (f *fakeClient) RefreshToken() string { return f.refresh }

func (f *fakeClient) OnTokensRefreshed(fn func(string)) { f.onRefresh = fn }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Garden(ctx context.Context, q validation.GardenQuery) (*models.Page, error) {
	f.Calls++
	f.LastQuery = q
	return f.GardenRet, f.GardenErr
}

func (f *fakeClient) CreateSeed(ctx context.Context, text string) (*models.Seed, error) {
	f.Calls++
	f.LastText = text
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) Like(ctx context.Context, seedID string) (string, error) {
	f.Calls++
	f.LastLiked = seedID
	if f.LikeErr != nil {
		return "", f.LikeErr
	}
	return "viewer", nil
}

func (f *fakeClient) Unlike(ctx context.Context, seedID string) (string, error) {
	f.Calls++
	f.LastUnliked = seedID
	if f.UnlikeErr != nil {
		return "", f.UnlikeErr
	}
	return "viewer", nil
}

func (f *fakeClient) CreateAvatarUpload(ctx context.Context, contentType string) (string, error) {
	f.Calls++
	f.LastContentType = contentType
	return f.AvatarURL, f.AvatarErr
}

func (f *fakeClient) ConfirmAvatarUpload(ctx context.Context) (string, error) {
	f.Calls++
	f.Confirms++
	if f.ConfirmErr != nil {
		return "", f.ConfirmErr
	}
	return "https://s3.local/avatars/viewer", nil
}
