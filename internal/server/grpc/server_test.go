package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/server/models"
	"github.com/dmitrijs2005/garden/internal/server/services"
	"github.com/dmitrijs2005/garden/internal/validation"
)

// ---- fakes ----

type fakeUser struct {
	refreshResp *services.TokenPair
	refreshErr  error

	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error
}

func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUser) Register(ctx context.Context, username string, salt []byte, verifier []byte) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUser) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.saltResp, f.saltErr
}
func (f *fakeUser) Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

type fakeSeeds struct {
	page     *models.GardenPage
	gotQuery validation.GardenQuery
	viewer   string
	gardenEr error

	created   *models.Seed
	createErr error
	gotText   string

	likeErr   error
	unlikeErr error
	actor     string
	seedID    string
}

func (f *fakeSeeds) Garden(ctx context.Context, viewerID string, q validation.GardenQuery) (*models.GardenPage, error) {
	f.viewer, f.gotQuery = viewerID, q
	if f.gardenEr != nil {
		return nil, f.gardenEr
	}
	if f.page == nil {
		return &models.GardenPage{}, nil
	}
	return f.page, nil
}
func (f *fakeSeeds) Create(ctx context.Context, userID string, text string) (*models.Seed, error) {
	f.actor, f.gotText = userID, text
	return f.created, f.createErr
}
func (f *fakeSeeds) Like(ctx context.Context, userID string, seedID string) (string, error) {
	f.actor, f.seedID = userID, seedID
	if f.likeErr != nil {
		return "", f.likeErr
	}
	return userID, nil
}
func (f *fakeSeeds) Unlike(ctx context.Context, userID string, seedID string) (string, error) {
	f.actor, f.seedID = userID, seedID
	if f.unlikeErr != nil {
		return "", f.unlikeErr
	}
	return userID, nil
}

type fakeAvatars struct {
	url      string
	err      error
	userID   string
	mimeType string

	confirmURL   string
	confirmErr   error
	confirmedFor string
}

func (f *fakeAvatars) CreateUploadURL(ctx context.Context, userID string, contentType string) (string, error) {
	f.userID, f.mimeType = userID, contentType
	return f.url, f.err
}

func (f *fakeAvatars) ConfirmUpload(ctx context.Context, userID string) (string, error) {
	f.confirmedFor = userID
	return f.confirmURL, f.confirmErr
}

func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     &fakeUser{},
		seeds:     &fakeSeeds{},
		avatars:   &fakeAvatars{},
		logger:    logging.Nop{},
		jwtSecret: []byte(secret),
	}
}

func TestNewGRPCServer(t *testing.T) {
	s := NewGRPCServer(":0", logging.Nop{}, nil, nil, nil, "k")
	if s.address != ":0" || string(s.jwtSecret) != "k" {
		t.Fatalf("unexpected server: %+v", s)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestServer("k")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := newTestServer("k")
	s.address = "bad::address"

	err := s.Run(context.Background())
	if err == nil {
		t.Fatal("expected listen error")
	}
}

func TestServe_ListenerFailureEndsServe(t *testing.T) {
	s := newTestServer("k")

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	lis.Close()

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background(), lis) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected accept error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after listener failure")
	}
}
