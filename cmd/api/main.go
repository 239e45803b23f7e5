package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkboard/internal/config"
	"linkboard/internal/core/evict"
	httpx "linkboard/internal/http"
	"linkboard/internal/services/dashboard"
	"linkboard/internal/session"
	"linkboard/internal/store/postgres"
	"linkboard/internal/store/repositories"
	"linkboard/internal/upstream"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Upstream marketplace API; wait for it to answer before serving.
	api := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.TimeoutSec)
	waitForUpstream(ctx, api)

	// Session store: Redis when configured, in-process otherwise.
	var store session.Store
	if cfg.Redis.Addr != "" {
		rs := session.NewRedisStore(cfg.Redis.Addr)
		if err := rs.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis connect fail")
		}
		store = rs
	} else {
		log.Warn().Msg("REDIS_ADDR not set, sessions are in-memory only")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.Session.TTL)

	// Audit trail is optional: no DSN, no auditing.
	var auditRepo repositories.AuditRepository
	if cfg.DB.DSN != "" {
		pool := postgres.MustOpen(ctx, cfg.DB.DSN)
		defer pool.Close()
		repo := postgres.NewAuditRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("audit schema fail")
		}
		auditRepo = repo
	} else {
		log.Warn().Msg("DB_DSN not set, mutation auditing disabled")
	}

	svc := dashboard.NewService(api, auditRepo)

	// Unmount idle dashboard sessions in the background.
	worker := evict.NewWorker(svc, cfg.Session.EvictIdle)
	go worker.Run(ctx)

	// Router
	r := httpx.NewRouter(httpx.RouterDependencies{
		API:       api,
		Sessions:  sessions,
		Dashboard: svc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Linkboard gateway listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Cfg) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.App.Env != "production" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// waitForUpstream pings the marketplace API with capped exponential backoff.
// This is the only retry anywhere: once serving, failed calls surface to the
// user instead of being retried.
func waitForUpstream(ctx context.Context, api *upstream.Client) {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	err := backoff.Retry(func() error {
		if err := api.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("upstream not ready")
			return err
		}
		return nil
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		log.Fatal().Err(err).Msg("upstream unreachable")
	}
}
