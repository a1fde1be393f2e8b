package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/dmitrijs2005/garden/internal/dbx"
	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/server/models"
	likesrepo "github.com/dmitrijs2005/garden/internal/server/repositories/likes"
	refreshtokensrepo "github.com/dmitrijs2005/garden/internal/server/repositories/refreshtokens"
	seedsrepo "github.com/dmitrijs2005/garden/internal/server/repositories/seeds"
	usersrepo "github.com/dmitrijs2005/garden/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

var nopLogger logging.Logger = logging.Nop{}

// --- users / refresh tokens ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	avatarUserID string
	avatarKey    string
	avatarErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) SetAvatarKey(ctx context.Context, userID, key string) error {
	f.avatarUserID, f.avatarKey = userID, key
	return f.avatarErr
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr error

	createErr error

	purged int64
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error) {
	return f.purged, nil
}

// --- seeds / likes kept in memory ---

// memGarden mimics the seeds and likes tables closely enough to exercise
// keyset pagination and like bookkeeping.
type memGarden struct {
	mu    sync.Mutex
	users map[string]*models.User
	seeds []*models.Seed
	likes map[[2]string]struct{}
	clock time.Time
	// frozen stamps every new seed with the same created_at
	frozen bool

	existsErr error
	gardenErr error
}

func newMemGarden(users ...*models.User) *memGarden {
	g := &memGarden{
		users: make(map[string]*models.User),
		likes: make(map[[2]string]struct{}),
		clock: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, u := range users {
		g.users[u.ID] = u
	}
	return g
}

func (g *memGarden) Create(ctx context.Context, seed *models.Seed) (*models.Seed, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.frozen {
		g.clock = g.clock.Add(time.Second)
	}
	seed.CreatedAt = g.clock
	author := *g.users[seed.AuthorID]
	seed.Author = &author
	stored := *seed
	g.seeds = append(g.seeds, &stored)
	return seed, nil
}

func (g *memGarden) Exists(ctx context.Context, id string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.existsErr != nil {
		return false, g.existsErr
	}
	return g.find(id) != nil, nil
}

func (g *memGarden) find(id string) *models.Seed {
	for _, s := range g.seeds {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func newer(a, b *models.Seed) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func (g *memGarden) Garden(ctx context.Context, f models.GardenFilter) (*models.GardenPage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gardenErr != nil {
		return nil, g.gardenErr
	}

	ordered := append([]*models.Seed(nil), g.seeds...)
	sort.Slice(ordered, func(i, j int) bool { return newer(ordered[i], ordered[j]) })

	var cursor *models.Seed
	if f.Cursor != "" {
		if cursor = g.find(f.Cursor); cursor == nil {
			return &models.GardenPage{Seeds: []*models.Seed{}}, nil
		}
	}

	out := make([]*models.Seed, 0, f.Limit+1)
	for _, s := range ordered {
		if len(out) == f.Limit+1 {
			break
		}
		if cursor != nil && !newer(cursor, s) {
			continue
		}
		author := *g.users[s.AuthorID]
		if f.AuthorName != "" && author.UserName != f.AuthorName {
			continue
		}
		row := *s
		row.Author = &author
		row.LikeCount = 0
		for k := range g.likes {
			if k[0] == s.ID {
				row.LikeCount++
			}
		}
		_, row.ViewerHasLiked = g.likes[[2]string{s.ID, f.ViewerID}]
		out = append(out, &row)
	}

	page := &models.GardenPage{Seeds: out}
	if len(out) > f.Limit {
		page.Seeds = out[:f.Limit]
		page.NextCursor = page.Seeds[f.Limit-1].ID
	}
	return page, nil
}

type memLikes struct{ g *memGarden }

func (l memLikes) Create(ctx context.Context, seedID, userID string) error {
	l.g.mu.Lock()
	defer l.g.mu.Unlock()

	k := [2]string{seedID, userID}
	if _, ok := l.g.likes[k]; ok {
		return common.ErrorConflict
	}
	l.g.likes[k] = struct{}{}
	return nil
}

func (l memLikes) Delete(ctx context.Context, seedID, userID string) error {
	l.g.mu.Lock()
	defer l.g.mu.Unlock()

	k := [2]string{seedID, userID}
	if _, ok := l.g.likes[k]; !ok {
		return common.ErrorNotFound
	}
	delete(l.g.likes, k)
	return nil
}

func (g *memGarden) likeRows(seedID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for k := range g.likes {
		if k[0] == seedID {
			n++
		}
	}
	return n
}

// --- manager ---

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	g *memGarden
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Seeds(db dbx.DBTX) seedsrepo.Repository                 { return m.g }
func (m *fakeRepoManager) Likes(db dbx.DBTX) likesrepo.Repository                 { return memLikes{m.g} }
