// Package server initializes and runs the Garden server: it opens the
// database, applies migrations, wires services and serves gRPC until a
// termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/garden/internal/logging"
	"github.com/dmitrijs2005/garden/internal/server/config"
	"github.com/dmitrijs2005/garden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/garden/internal/server/services"

	gs "github.com/dmitrijs2005/garden/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	userService   *services.UserService
	seedService   *services.SeedService
	avatarService *services.AvatarService
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, "json", c.LogLevel)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	us := services.NewUserService(db, rm, c, logger)
	as := services.NewAvatarService(db, rm, c, logger)
	ss := services.NewSeedService(db, rm, as, logger)

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		repomanager:   rm,
		userService:   us,
		seedService:   ss,
		avatarService: as,
	}, nil
}

func (app *App) Run(ctx context.Context) error {

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.seedService, app.avatarService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
		return err
	}

	app.logger.Info(context.Background(), "Server stopped")
	return nil
}
