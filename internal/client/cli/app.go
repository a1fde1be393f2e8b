package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/garden/internal/client/cache"
	"github.com/dmitrijs2005/garden/internal/client/client"
	"github.com/dmitrijs2005/garden/internal/client/config"
	"github.com/dmitrijs2005/garden/internal/client/feed"
	"github.com/dmitrijs2005/garden/internal/client/models"
	"github.com/dmitrijs2005/garden/internal/client/services"
	"github.com/dmitrijs2005/garden/internal/filex"
	"github.com/dmitrijs2005/garden/internal/logging"
)

const dbFileName = "garden.db"

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// gardenService is the part of services.GardenService the CLI uses.
type gardenService interface {
	feed.Fetcher
	Plant(ctx context.Context, text string) (*models.Seed, error)
	Like(ctx context.Context, key cache.QueryKey, seedID string) error
	Unlike(ctx context.Context, key cache.QueryKey, seedID string) error
	UploadAvatar(ctx context.Context, path string) error
}

type App struct {
	config        *config.Config
	db            *sql.DB
	authService   services.AuthService
	gardenService gardenService
	store         *cache.Store
	feed          *feed.Controller
	viewport      *feed.Viewport
	logger        logging.Logger

	userName string
	loaded   bool

	modeMu sync.Mutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.New(os.Stderr, "text", c.LogLevel)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGardenClientService(c.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := cache.NewStore()
	as := services.NewAuthService(apiClient, db, logger)
	gs := services.NewGardenService(apiClient, store, logger)

	return &App{
		config:        c,
		db:            db,
		authService:   as,
		gardenService: gs,
		store:         store,
		feed:          feed.NewController(gs, store, c.PageSize, logger),
		viewport:      feed.NewViewport(c.ViewportHeight),
		logger:        logger,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run starts the REPL and releases the connection and the local store when
// the user leaves.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "close client", "error", err)
		}
		if a.db != nil {
			a.db.Close()
		}
	}()
	a.Root(ctx)
}

// Root resumes a saved session, starts the connectivity watcher, attaches
// the pagination controller to the viewport and runs the REPL.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to Garden CLI (type 'help' for commands)")
	a.resume(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	a.feed.Attach(ctx, a.viewport)
	defer a.feed.Detach()

	runREPL(ctx, a, a.getStatus, a.reader)

	cancel()
	wg.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) getStatus() string {
	s := a.userName
	if m := a.Mode(); m != "" {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()
			if ctx.Err() != nil {
				return
			}

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
