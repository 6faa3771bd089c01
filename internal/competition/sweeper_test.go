package competition

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockSweepStore struct {
	rows     []SweepRow
	listErr  error
	failIDs  map[string]error
	statuses map[string]Status
}

func (m *mockSweepStore) ListForSweep(ctx context.Context) ([]SweepRow, error) {
	return m.rows, m.listErr
}

func (m *mockSweepStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	if err, ok := m.failIDs[id]; ok {
		return err
	}
	if m.statuses == nil {
		m.statuses = make(map[string]Status)
	}
	m.statuses[id] = status
	return nil
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestSweeper_Run(t *testing.T) {
	now := time.Date(2025, 6, 13, 3, 0, 0, 0, time.UTC)

	store := &mockSweepStore{rows: []SweepRow{
		// ended yesterday -> COMPLETED
		{ID: "ended", Status: StatusOngoing, Deadline: now.Add(-20 * day), StartDate: now.Add(-10 * day), EndDate: now.Add(-day)},
		// running now -> ONGOING
		{ID: "running", Status: StatusRegistrationOpen, Deadline: now.Add(-5 * day), StartDate: now.Add(-day), EndDate: now.Add(5 * day)},
		// already correct -> untouched
		{ID: "open", Status: StatusRegistrationOpen, Deadline: now.Add(5 * day), StartDate: now.Add(10 * day), EndDate: now.Add(20 * day)},
		// retired mid-window -> must stay COMPLETED
		{ID: "retired", Status: StatusCompleted, Deadline: now.Add(-5 * day), StartDate: now.Add(-day), EndDate: now.Add(5 * day)},
	}}

	NewSweeper(store, fixedClock(now)).Run(context.Background())

	if got := store.statuses["ended"]; got != StatusCompleted {
		t.Errorf("ended competition updated to %s, want COMPLETED", got)
	}
	if got := store.statuses["running"]; got != StatusOngoing {
		t.Errorf("running competition updated to %s, want ONGOING", got)
	}
	if _, touched := store.statuses["open"]; touched {
		t.Error("competition with correct status should not be written")
	}
	if got, touched := store.statuses["retired"]; touched {
		t.Errorf("retired competition resurrected to %s by the sweep", got)
	}
}

func TestSweeper_FailureIsolation(t *testing.T) {
	now := time.Date(2025, 6, 13, 3, 0, 0, 0, time.UTC)

	store := &mockSweepStore{
		rows: []SweepRow{
			{ID: "bad", Status: StatusOngoing, Deadline: now.Add(-20 * day), StartDate: now.Add(-10 * day), EndDate: now.Add(-day)},
			{ID: "good", Status: StatusOngoing, Deadline: now.Add(-20 * day), StartDate: now.Add(-10 * day), EndDate: now.Add(-day)},
		},
		failIDs: map[string]error{"bad": errors.New("connection reset")},
	}

	NewSweeper(store, fixedClock(now)).Run(context.Background())

	// The failure on "bad" must not stop "good" from being swept.
	if got := store.statuses["good"]; got != StatusCompleted {
		t.Errorf("competition after a failed row updated to %s, want COMPLETED", got)
	}
}

func TestSweeper_ListFailure(t *testing.T) {
	store := &mockSweepStore{listErr: errors.New("db down")}
	// Must not panic; the tick is fire-and-forget.
	NewSweeper(store, nil).Run(context.Background())
}
