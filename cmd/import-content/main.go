// Package main provides the content importer, which validates a directory
// of Markdown room files and stores them in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/liminal/internal/config"
	"github.com/cory-johannsen/liminal/internal/importer"
	"github.com/cory-johannsen/liminal/internal/observability"
	"github.com/cory-johannsen/liminal/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	sourceDir := flag.String("source", "", "directory of Markdown room files (default: content.dir)")
	dryRun := flag.Bool("dry-run", false, "validate and report without writing to the database")
	prune := flag.Bool("prune", false, "delete stored rooms missing from the source directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	dir := *sourceDir
	if dir == "" {
		dir = cfg.Content.Dir
	}
	if dir == "" {
		fmt.Fprintln(os.Stderr, "usage: import-content -source <dir> [-config <file>] [-dry-run] [-prune]")
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging, cfg.Telemetry.ServiceName+"-import")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	start := time.Now()

	var sink importer.Sink
	if *dryRun {
		sink = importer.NewDryRunSink(logger)
	} else {
		if err := config.ValidateDatabase(cfg.Database); err != nil {
			logger.Fatal("invalid database config", zap.Error(err))
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		sink = postgres.NewRoomRepository(pool.DB())
	}

	res, err := importer.New(sink, logger, importer.Options{Prune: *prune}).Run(ctx, dir)
	if err != nil {
		logger.Fatal("import failed", zap.String("dir", dir), zap.Error(err))
	}
	fmt.Printf("imported %d room(s), %d dangling exit(s), pruned %d in %s\n",
		res.Rooms, len(res.Dangling), res.Pruned, time.Since(start).Round(time.Millisecond))
}
