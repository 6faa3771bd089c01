package competition

import (
	"context"
	"log"
	"time"

	"comphub/internal/metrics"
)

// SweepStore is the slice of the competition store the lifecycle sweep uses.
type SweepStore interface {
	ListForSweep(ctx context.Context) ([]SweepRow, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// Sweeper re-derives every competition's status from the clock.
// Exactly one sweeper instance should run per deployment.
type Sweeper struct {
	store SweepStore
	now   func() time.Time
}

// NewSweeper creates a sweeper. A nil clock means time.Now.
func NewSweeper(store SweepStore, now func() time.Time) *Sweeper {
	if now == nil {
		now = time.Now
	}
	return &Sweeper{store: store, now: now}
}

// Run executes one sweep over all competitions. A failed update is
// logged and counted but does not stop the rest of the sweep; the
// caller treats the whole tick as fire-and-forget.
func (s *Sweeper) Run(ctx context.Context) {
	rows, err := s.store.ListForSweep(ctx)
	if err != nil {
		log.Printf("sweep: list competitions failed: %v", err)
		metrics.SweepFailures.Inc()
		return
	}

	now := s.now()
	updated := 0
	for _, row := range rows {
		next := NextStatus(now, row.Deadline, row.StartDate, row.EndDate, row.Status)
		if next == row.Status {
			continue
		}
		if err := s.store.UpdateStatus(ctx, row.ID, next); err != nil {
			log.Printf("sweep: competition %s: update %s -> %s failed: %v", row.ID, row.Status, next, err)
			metrics.SweepFailures.Inc()
			continue
		}
		log.Printf("sweep: competition %s: %s -> %s", row.ID, row.Status, next)
		metrics.SweepUpdated.Inc()
		updated++
	}
	log.Printf("sweep: done, %d of %d competitions updated", updated, len(rows))
}
