package competition

import "time"

// NextStatus derives a competition's status from the wall clock and its
// date fields. It is pure and idempotent: feeding its own output back in
// with the same now yields the same result.
//
// Precedence is COMPLETED > ONGOING > REGISTRATION_OPEN > unchanged.
// COMPLETED is terminal; this function never moves a competition out of
// it. The gap between the registration deadline and the start date maps
// to "unchanged", so a manually set UPCOMING survives there.
func NextStatus(now time.Time, deadline, start, end time.Time, current Status) Status {
	if current == StatusCompleted {
		// Terminal: a retired competition stays retired even while its
		// window is still open.
		return StatusCompleted
	}
	switch {
	case now.After(end):
		return StatusCompleted
	case !now.Before(start) && !now.After(end):
		// start <= now <= end; on deadline == start == now this branch
		// wins over REGISTRATION_OPEN.
		return StatusOngoing
	case !now.After(deadline) && now.Before(start) && current != StatusOngoing:
		return StatusRegistrationOpen
	default:
		return current
	}
}
