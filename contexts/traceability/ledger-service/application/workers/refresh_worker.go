package workers

import (
	"context"
	"log/slog"
	"time"

	"foodtrace/contexts/traceability/ledger-service/application"
	"foodtrace/internal/platform/messaging"
)

// RefreshWorker keeps the snapshot store current. It refreshes on a fixed
// interval and additionally whenever a participant registration event
// arrives, so directory changes re-enrich timelines without waiting for the
// next tick.
type RefreshWorker struct {
	Service  application.Service
	Snapshot *application.SnapshotStore
	Interval time.Duration
	Registry <-chan messaging.Event
	Logger   *slog.Logger
}

// RunOnce executes a single refresh cycle and publishes its result.
// Fatal cycle errors leave the previous snapshot in place.
func (w RefreshWorker) RunOnce(ctx context.Context) error {
	result, err := w.Service.Refresh(ctx)
	if err != nil {
		application.ResolveLogger(w.Logger).Error("refresh cycle failed",
			"event", "ledger_refresh_failed",
			"module", "traceability/ledger-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	w.Snapshot.Set(result)
	return nil
}

// Run loops until the context is cancelled. Errors are logged by RunOnce and
// retried on the next trigger rather than stopping the worker.
func (w RefreshWorker) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	_ = w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = w.RunOnce(ctx)
		case _, ok := <-w.Registry:
			if !ok {
				return
			}
			_ = w.RunOnce(ctx)
		}
	}
}
