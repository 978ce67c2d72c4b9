package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/xoso/internal/batch"
	"github.com/GlebRadaev/xoso/internal/config"
	"github.com/GlebRadaev/xoso/internal/fetcher"
	"github.com/GlebRadaev/xoso/internal/handlers"
	"github.com/GlebRadaev/xoso/internal/matcher"
	"github.com/GlebRadaev/xoso/internal/notify"
	"github.com/GlebRadaev/xoso/internal/pg"
	"github.com/GlebRadaev/xoso/internal/repo"
	"github.com/GlebRadaev/xoso/internal/service"
	"github.com/GlebRadaev/xoso/pkg/clients"
	"github.com/GlebRadaev/xoso/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	fetcher *fetcher.Service
	batch   *batch.Runner

	errCh   chan error
	wg      sync.WaitGroup
	closers []func()
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	policy, err := matcher.ParseNorthBonus(cfg.NorthBonus)
	if err != nil {
		return fmt.Errorf("can't configure matcher: %w", err)
	}

	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	httpClient := clients.NewHTTPClient()
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.fetcher = fetcher.New(cfg, a.repo.ResultRepo, httpClient)
	a.srv = service.New(cfg, a.repo, a.fetcher, notify.New(cfg, httpClient), matcher.New(policy))
	a.api = handlers.New(a.srv)
	a.batch = batch.New(cfg, a.fetcher, a.srv.SettlementService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	if err = a.startBatchRunner(ctx); err != nil {
		return fmt.Errorf("can't start batch runner: %w", err)
	}
	a.closers = append(a.closers, a.fetcher.Close, pool.Close)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startBatchRunner(ctx context.Context) error {
	done, err := a.batch.Start(ctx)
	if err != nil {
		return err
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-done
	}()
	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	for _, closeFn := range a.closers {
		closeFn()
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
