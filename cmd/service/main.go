package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/mantenimiento/internal/app"
	"github.com/dropDatabas3/mantenimiento/internal/config"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"

	_ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/memory"
	_ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/pg"
)

func main() {
	// .env es opcional; sin él se usan las variables del sistema.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	configPath := flag.String("config", envOr("CONFIG_PATH", "configs/config.yaml"), "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatalf("service: %v", err)
	}
}

func run(cfg *config.Config) error {
	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Version:     os.Getenv("SERVICE_VERSION"),
	})
	defer func() { _ = logger.Sync() }()
	lg := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		lg.Error("wiring failed", logger.Err(err))
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			lg.Warn("cleanup error", logger.Err(err))
		}
	}()

	srv := app.NewHTTPServer(cfg, a.Handler)
	shutdownTimeout := config.Dur(cfg.Server.ShutdownTimeout, 10*time.Second)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("http server listening",
			logger.String("addr", srv.Addr),
			logger.String("storage", cfg.Storage.Driver),
			logger.String("jwt_alg", cfg.JWT.Alg),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down", logger.String("timeout", shutdownTimeout.String()))
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("server stopped with error", logger.Err(err))
		return err
	}
	lg.Info("bye")
	return nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
