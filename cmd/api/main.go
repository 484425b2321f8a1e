package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/baharkarakas/groupledger/internal/api"
	"github.com/baharkarakas/groupledger/internal/auth"
	"github.com/baharkarakas/groupledger/internal/config"
	"github.com/baharkarakas/groupledger/internal/db"
	"github.com/baharkarakas/groupledger/internal/logger"
	"github.com/baharkarakas/groupledger/internal/metrics"
	"github.com/baharkarakas/groupledger/internal/repository"
	"github.com/baharkarakas/groupledger/internal/repository/memory"
	"github.com/baharkarakas/groupledger/internal/repository/postgres"
	"github.com/baharkarakas/groupledger/internal/services"
	"github.com/baharkarakas/groupledger/internal/worker"
)

func main() {
	// a missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Error("storage", "backend", cfg.DataBackend, "err", err)
		os.Exit(1)
	}
	defer closeRepos()

	wp := worker.NewPool(cfg.WorkerCount)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:         cfg,
		Log:         log,
		Tokens:      tm,
		AuthSvc:     services.NewAuthService(repos, tm, wp),
		UserSvc:     services.NewUserService(repos, wp),
		MovementSvc: services.NewMovementService(repos, wp),
		BalanceSvc:  services.NewBalanceService(repos.Movements, repos.Users),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}

func openRepositories(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Repositories, func(), error) {
	if cfg.DataBackend == config.BackendMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		return memory.New().Repositories(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return repository.Repositories{}, nil, err
	}
	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return repository.Repositories{}, nil, err
		}
	}
	return postgres.NewRepositories(pool), pool.Close, nil
}
