package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"navmenu/internal/metrics"
)

// Refreshable is anything whose cached state can be recomputed.
type Refreshable interface {
	Refresh(ctx context.Context) error
}

// Refresher periodically recomputes the menu cache regardless of expiry.
type Refresher struct {
	target   Refreshable
	interval time.Duration
	clock    clock.Clock
	onStart  bool
	done     func() // test hook, called after each run
}

// NewRefresher creates a refresher. A nil clock uses the wall clock.
func NewRefresher(target Refreshable, interval time.Duration, clk clock.Clock, refreshOnStart bool) *Refresher {
	if clk == nil {
		clk = clock.New()
	}
	return &Refresher{
		target:   target,
		interval: interval,
		clock:    clk,
		onStart:  refreshOnStart,
	}
}

// Start runs the refresh loop until ctx is canceled.
func (r *Refresher) Start(ctx context.Context) {
	slog.Info("menu refresher started", "interval", r.interval, "refresh_on_start", r.onStart)

	ticker := r.clock.Ticker(r.interval)
	defer ticker.Stop()

	if r.onStart {
		r.run(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("menu refresher stopped")
			return
		case <-ticker.C:
			r.run(ctx)
		}
	}
}

// run performs one refresh. Failures leave the previous cache entry in place.
func (r *Refresher) run(ctx context.Context) {
	runID := uuid.New().String()
	start := r.clock.Now()

	err := r.target.Refresh(ctx)
	metrics.RecordRefresh(err)
	if err != nil {
		slog.Error("menu refresh failed, serving previous entry", "run_id", runID, "error", err)
	} else {
		slog.Info("menu cache updated", "run_id", runID, "duration", r.clock.Since(start))
	}

	if r.done != nil {
		r.done()
	}
}
