package competition

import (
	"testing"
	"time"
)

var day = 24 * time.Hour

// base dates: registration closes 5 days before a 10-day event.
var (
	start    = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	deadline = start.Add(-5 * day)
	end      = start.Add(10 * day)
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		current  Status
		expected Status
	}{
		{"before deadline opens registration", start.Add(-10 * day), StatusUpcoming, StatusRegistrationOpen},
		{"on deadline still open", deadline, StatusUpcoming, StatusRegistrationOpen},
		{"between deadline and start keeps current", deadline.Add(day), StatusUpcoming, StatusUpcoming},
		{"between deadline and start keeps open", deadline.Add(day), StatusRegistrationOpen, StatusRegistrationOpen},
		{"on start date goes ongoing", start, StatusRegistrationOpen, StatusOngoing},
		{"mid event ongoing", start.Add(3 * day), StatusRegistrationOpen, StatusOngoing},
		{"on end date still ongoing", end, StatusOngoing, StatusOngoing},
		{"after end completed", end.Add(time.Second), StatusOngoing, StatusCompleted},
		{"well after end completed", start.Add(11 * day), StatusRegistrationOpen, StatusCompleted},
		{"completed never reopens before deadline", start.Add(-10 * day), StatusCompleted, StatusCompleted},
		{"completed stays completed mid window", start.Add(3 * day), StatusCompleted, StatusCompleted},
		{"completed stays completed on start date", start, StatusCompleted, StatusCompleted},
		{"ongoing never reopens before deadline", start.Add(-10 * day), StatusOngoing, StatusOngoing},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NextStatus(test.now, deadline, start, end, test.current)
			if got != test.expected {
				t.Errorf("NextStatus(now=%s, current=%s) = %s, want %s",
					test.now, test.current, got, test.expected)
			}
		})
	}
}

func TestNextStatus_Idempotent(t *testing.T) {
	nows := []time.Time{
		start.Add(-10 * day),
		deadline,
		deadline.Add(day),
		start,
		start.Add(3 * day),
		end,
		end.Add(time.Second),
	}
	currents := []Status{StatusRegistrationOpen, StatusUpcoming, StatusOngoing, StatusCompleted}

	for _, now := range nows {
		for _, current := range currents {
			once := NextStatus(now, deadline, start, end, current)
			twice := NextStatus(now, deadline, start, end, once)
			if once != twice {
				t.Errorf("not idempotent at now=%s current=%s: first %s then %s",
					now, current, once, twice)
			}
		}
	}
}

func TestNextStatus_CompletedIsTerminal(t *testing.T) {
	// Once completed, no clock reading produces anything else. The
	// in-window readings matter: a competition retired early must not
	// come back while its dates still say it is running.
	nows := []time.Time{
		start.Add(-10 * day),
		deadline,
		start,
		start.Add(3 * day),
		end,
		end.Add(time.Second),
		end.Add(day),
		end.Add(365 * day),
	}
	for _, now := range nows {
		if got := NextStatus(now, deadline, start, end, StatusCompleted); got != StatusCompleted {
			t.Errorf("NextStatus(now=%s, COMPLETED) = %s, want COMPLETED", now, got)
		}
	}
}

func TestNextStatus_DeadlineEqualsStart(t *testing.T) {
	// With deadline == start == now the inclusive start check wins.
	got := NextStatus(start, start, start, end, StatusRegistrationOpen)
	if got != StatusOngoing {
		t.Errorf("NextStatus(deadline == start == now) = %s, want ONGOING", got)
	}
}
