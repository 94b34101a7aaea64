// Package main provides the liminal web server binary, serving rooms and the
// daily seed API over HTTP with a gRPC health endpoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/liminal/internal/catalog"
	"github.com/cory-johannsen/liminal/internal/config"
	"github.com/cory-johannsen/liminal/internal/observability"
	"github.com/cory-johannsen/liminal/internal/random"
	"github.com/cory-johannsen/liminal/internal/seeded"
	"github.com/cory-johannsen/liminal/internal/server"
	"github.com/cory-johannsen/liminal/internal/storage/postgres"
	"github.com/cory-johannsen/liminal/internal/web"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (empty = defaults and environment only)")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatal("initializing tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("flushing traces", zap.Error(err))
		}
	}()

	loc, err := cfg.Clock.Location()
	if err != nil {
		logger.Fatal("resolving clock timezone", zap.Error(err))
	}

	catStart := time.Now()
	rooms, pool, err := loadRooms(ctx, cfg)
	if err != nil {
		logger.Fatal("loading rooms", zap.String("source", cfg.Content.Source), zap.Error(err))
	}
	cat, err := catalog.NewCatalog(rooms, random.NewCryptoSource())
	if err != nil {
		logger.Fatal("building catalog", zap.Error(err))
	}
	for _, d := range cat.DanglingExits() {
		logger.Debug("dangling exit", zap.String("from", d.From), zap.String("to", d.To))
	}
	logger.Info("catalog loaded",
		zap.String("source", cfg.Content.Source),
		zap.Int("rooms", cat.Len()),
		zap.Duration("elapsed", time.Since(catStart)),
	)

	sel := seeded.NewSelector(seeded.SystemClock{}, loc)
	handler := web.NewHandler(cat, sel, logger)

	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	httpSvc := server.NewHTTPService(httpSrv, cfg.HTTP.ShutdownTimeout, logger)
	if _, err := httpSvc.Listen(); err != nil {
		logger.Fatal("binding http listener", zap.Error(err))
	}

	lifecycle := server.NewLifecycle(logger)
	if pool != nil {
		lifecycle.Add("postgres", server.NewMonitorService("postgres", 30*time.Second,
			func(ctx context.Context) error { return pool.Health(ctx, 5*time.Second) },
			pool.Close,
			logger,
		))
	}
	lifecycle.Add("http", httpSvc)

	if cfg.GRPC.Enabled {
		health := server.NewHealthService(cfg.GRPC.Addr(), logger)
		if _, err := health.Listen(); err != nil {
			logger.Fatal("binding grpc health listener", zap.Error(err))
		}
		health.MarkServing()
		lifecycle.Add("grpc-health", health)
	}

	logger.Info("liminal ready",
		zap.String("http_addr", cfg.HTTP.Addr()),
		zap.String("timezone", loc.String()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// loadRooms returns the room list for the configured content source. For the
// postgres source it also returns the open pool, which the caller owns.
func loadRooms(ctx context.Context, cfg config.Config) ([]catalog.Room, *postgres.Pool, error) {
	switch cfg.Content.Source {
	case config.SourceBuiltin:
		return catalog.Builtin(), nil, nil
	case config.SourceFiles:
		rooms, err := catalog.LoadContentDir(cfg.Content.Dir)
		return rooms, nil, err
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		rooms, err := postgres.NewRoomRepository(pool.DB()).LoadAll(ctx)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		if len(rooms) == 0 {
			pool.Close()
			return nil, nil, errors.New("database holds no rooms; run import-content first")
		}
		return rooms, pool, nil
	default:
		return nil, nil, fmt.Errorf("unknown content source %q", cfg.Content.Source)
	}
}
