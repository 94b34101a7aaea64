package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CheckFunc probes a dependency and reports whether it is reachable.
type CheckFunc func(ctx context.Context) error

// NewMonitorService returns a Service that runs check once at start, failing
// the service if it errors, and then every interval until stopped. Later
// failures are logged. onStop, when non-nil, runs once on Stop and is where
// the monitored resource is released.
//
// Precondition: interval > 0; check and logger must be non-nil.
func NewMonitorService(name string, interval time.Duration, check CheckFunc, onStop func(), logger *zap.Logger) *FuncService {
	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	return &FuncService{
		StartFn: func() error {
			if err := check(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("%s health check: %w", name, err)
			}
			logger.Info("dependency healthy", zap.String("dependency", name))

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := check(ctx); err != nil && ctx.Err() == nil {
						logger.Warn("health check failed",
							zap.String("dependency", name),
							zap.Error(err),
						)
					}
				}
			}
		},
		StopFn: func() {
			once.Do(func() {
				cancel()
				if onStop != nil {
					onStop()
				}
			})
		},
	}
}
