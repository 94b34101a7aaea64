package importer

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/liminal/internal/catalog"
)

// Sink receives validated rooms from an import run.
//
// Precondition: rooms are in catalog order with unique slugs.
// Postcondition: Store writes every room and, when prune is set, removes
// stored rooms whose slug is not among them, reporting how many it removed.
// On error nothing is written.
type Sink interface {
	Store(ctx context.Context, rooms []catalog.Room, prune bool) (int64, error)
}

// DryRunSink logs what would be written and stores nothing.
type DryRunSink struct {
	logger *zap.Logger
}

// NewDryRunSink creates a DryRunSink that reports through logger.
func NewDryRunSink(logger *zap.Logger) *DryRunSink {
	return &DryRunSink{logger: logger}
}

// Store logs each room and the prune decision.
func (s *DryRunSink) Store(_ context.Context, rooms []catalog.Room, prune bool) (int64, error) {
	for _, r := range rooms {
		s.logger.Info("would upsert room",
			zap.String("slug", r.Slug),
			zap.Int("exits", len(r.Exits)),
			zap.Int("variants", len(r.Variants)),
		)
	}
	if prune {
		s.logger.Info("would prune rooms not in import", zap.Int("keep", len(rooms)))
	}
	return 0, nil
}
