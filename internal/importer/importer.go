// Package importer loads authored room files and hands them to a Sink.
package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/liminal/internal/catalog"
)

// Options tune an import run.
type Options struct {
	// Prune removes stored rooms that are absent from the imported directory.
	Prune bool
}

// Result summarizes a completed import.
type Result struct {
	Rooms    int
	Dangling []catalog.DanglingExit
	Pruned   int64
	Elapsed  time.Duration
}

// Importer orchestrates content import from a directory to a Sink.
type Importer struct {
	sink   Sink
	logger *zap.Logger
	opts   Options
}

// New constructs an Importer backed by the given Sink.
//
// Precondition: sink and logger must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(sink Sink, logger *zap.Logger, opts Options) *Importer {
	return &Importer{sink: sink, logger: logger, opts: opts}
}

// Run loads every room file in dir, validates the set as a catalog, and
// writes it to the sink. Dangling exits are reported but tolerated.
//
// Precondition: dir must contain at least one room file.
// Postcondition: the sink holds every room in dir (and with Options.Prune
// nothing else), or an error is returned and the sink is unchanged.
func (imp *Importer) Run(ctx context.Context, dir string) (Result, error) {
	overall := time.Now()

	t0 := time.Now()
	rooms, err := catalog.LoadContentDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("loading content: %w", err)
	}
	imp.logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("rooms", len(rooms)),
		zap.Duration("elapsed", time.Since(t0)),
	)

	cat, err := catalog.NewCatalog(rooms, nil)
	if err != nil {
		return Result{}, fmt.Errorf("validating catalog: %w", err)
	}
	dangling := cat.DanglingExits()
	for _, d := range dangling {
		imp.logger.Warn("dangling exit",
			zap.String("from", d.From),
			zap.String("to", d.To),
		)
	}

	ordered := cat.Rooms()
	pruned, err := imp.sink.Store(ctx, ordered, imp.opts.Prune)
	if err != nil {
		return Result{}, fmt.Errorf("storing rooms: %w", err)
	}

	res := Result{Rooms: len(ordered), Dangling: dangling, Pruned: pruned}
	res.Elapsed = time.Since(overall)
	imp.logger.Info("import complete",
		zap.Int("rooms", res.Rooms),
		zap.Int("dangling_exits", len(res.Dangling)),
		zap.Int64("pruned", res.Pruned),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
