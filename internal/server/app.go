// Package server initializes and runs the calckeeper server. It opens the
// configured store, wires services into the HTTP API and the gRPC health
// endpoint, and shuts both down gracefully on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/common"
	"github.com/dmitrijs2005/calckeeper/internal/dbx"
	"github.com/dmitrijs2005/calckeeper/internal/logging"
	"github.com/dmitrijs2005/calckeeper/internal/server/auth"
	"github.com/dmitrijs2005/calckeeper/internal/server/config"
	"github.com/dmitrijs2005/calckeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/calckeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/calckeeper/internal/server/services"

	gs "github.com/dmitrijs2005/calckeeper/internal/server/grpc"
)

const healthCheckInterval = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler *httpserver.Handlers
	ping    func(ctx context.Context) error
}

// storage is what the app needs from a backing store.
type storage struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	tx    dbx.Transactor
	ping  func(ctx context.Context) error
}

func openStorage(ctx context.Context, c *config.Config) (*storage, error) {
	if c.DatabaseDSN == config.MemoryDSN {
		m := memory.NewRepositoryManager()
		return &storage{repos: m, tx: m}, nil
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &storage{db: db, repos: rm, tx: dbx.SQLTransactor{DB: db}, ping: db.PingContext}, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	secretKey := c.SecretKey
	if secretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key error: %w", err)
		}
		secretKey = key
		logger.Warn(ctx, "no secret key configured, tokens will not survive a restart")
	}

	st, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	// nil when running on the memory store
	var db dbx.DBTX
	if st.db != nil {
		db = st.db
	}

	tokens := auth.NewTokenService([]byte(secretKey), c.AccessTokenValidityDuration)
	hasher := auth.NewBcryptHasher(c.BcryptCost)

	us := services.NewUserService(db, st.repos, hasher, tokens)
	cs := services.NewCalculationService(db, st.tx, st.repos)
	authenticator := auth.NewAuthenticator(tokens, st.repos.Users(db), hasher, c.AnonymousFallback, logger)

	h := httpserver.NewHandlers(us, cs, authenticator, st.ping, logger)

	return &App{config: c, logger: logger, db: st.db, handler: h, ping: st.ping}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, httpserver.NewRouter(app.handler, app.logger))

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.ping, healthCheckInterval)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a listener fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
