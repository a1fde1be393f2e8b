package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/garden/internal/client/cache"
	"github.com/dmitrijs2005/garden/internal/client/config"
	"github.com/dmitrijs2005/garden/internal/client/feed"
	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/validation"
)

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	resumeName string
	resumeErr  error

	logoutCalled bool
	logoutErr    error

	mu      sync.Mutex
	pingErr error
	pings   int
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginErr
}
func (f *fakeAuth) Resume(context.Context) (string, error) { return f.resumeName, f.resumeErr }
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}
func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}

// memGarden serves newest-first pages from memory and patches the shared
// store the way services.GardenService does.
type memGarden struct {
	store *cache.Store
	seeds []models.Seed

	likeErr    error
	avatarPath string
	avatarErr  error
}

func newMemGarden(n int, authors ...string) *memGarden {
	if len(authors) == 0 {
		authors = []string{"alice"}
	}
	g := &memGarden{}
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		g.seeds = append(g.seeds, models.Seed{
			ID:        fmt.Sprintf("seed-%02d", i),
			Text:      fmt.Sprintf("seed number %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Author:    models.User{Name: authors[i%len(authors)]},
		})
	}
	return g
}

func (g *memGarden) Garden(ctx context.Context, q validation.GardenQuery) (*models.Page, error) {
	var matching []models.Seed
	for _, s := range g.seeds {
		if q.Where != nil && q.Where.Author != nil && s.Author.Name != q.Where.Author.Name {
			continue
		}
		matching = append(matching, s)
	}
	start := 0
	if q.Cursor != "" {
		for i, s := range matching {
			if s.ID == q.Cursor {
				start = i + 1
			}
		}
	}
	end := min(start+q.Limit, len(matching))
	page := &models.Page{Seeds: append([]models.Seed(nil), matching[start:end]...)}
	if end < len(matching) {
		page.NextCursor = page.Seeds[len(page.Seeds)-1].ID
	}
	return page, nil
}

func (g *memGarden) Plant(ctx context.Context, text string) (*models.Seed, error) {
	if err := validation.Seed(text); err != nil {
		return nil, err
	}
	s := models.Seed{ID: "seed-new", Text: text, CreatedAt: time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC), Author: models.User{Name: "me"}}
	g.seeds = append([]models.Seed{s}, g.seeds...)
	g.store.Invalidate()
	return &s, nil
}

func (g *memGarden) Like(ctx context.Context, key cache.QueryKey, seedID string) error {
	if g.likeErr != nil {
		return g.likeErr
	}
	g.store.Update(key, cache.Liked(seedID))
	return nil
}

func (g *memGarden) Unlike(ctx context.Context, key cache.QueryKey, seedID string) error {
	if g.likeErr != nil {
		return g.likeErr
	}
	g.store.Update(key, cache.Unliked(seedID))
	return nil
}

func (g *memGarden) UploadAvatar(ctx context.Context, path string) error {
	g.avatarPath = path
	return g.avatarErr
}

// newTestApp wires an App around fakes with page size 10 and a viewport of
// 5 rows, the clock fixed at 2026-01-01 13:00 UTC.
func newTestApp(t *testing.T, g *memGarden, auth *fakeAuth, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()

	origNow := nowFn
	nowFn = func() time.Time { return time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFn = origNow })

	if g == nil {
		g = newMemGarden(0)
	}
	if auth == nil {
		auth = &fakeAuth{}
	}
	store := cache.NewStore()
	g.store = store

	out := &bytes.Buffer{}
	a := &App{
		config:        &config.Config{PageSize: 10, ViewportHeight: 5},
		authService:   auth,
		gardenService: g,
		store:         store,
		feed:          feed.NewController(g, store, 10, logging.Nop{}),
		viewport:      feed.NewViewport(5),
		logger:        logging.Nop{},
		reader:        bufio.NewReader(strings.NewReader(strings.Join(lines, "\n"))),
		out:           out,
	}
	a.feed.Attach(context.Background(), a.viewport)
	t.Cleanup(a.feed.Detach)
	return a, out
}

// stubInputs makes the prompts return username and password.
func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
