package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/cron"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/database"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/logger"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/minio"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/redis"
	"github.com/adilhusain01/aadil-rasheed-server/internal/wire"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	logger.InitLogger()

	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}
	if err = database.AutoMigrate(db); err != nil {
		log.Error("Fatal error: failed to migrate schema", "err", err)
		panic(err)
	}

	// "api seed" provisions the admin account and starter content, then
	// exits.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err = runSeed(db); err != nil {
			log.Error("Fatal error: seeding failed", "err", err)
			panic(err)
		}
		log.Info("Seed data in place.")
		return
	}

	if err = redis.InitRedis(cfg.Redis); err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	if err = minio.Init(); err != nil {
		log.Error("Fatal error: failed to initialize MinIO", "err", err)
		panic(err)
	}

	app, err := wire.BuildApplication(db)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if err = cron.InitCron(app.CronMgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
