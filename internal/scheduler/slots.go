package scheduler

import (
	"time"

	"github.com/dferrell/cadence/internal/availability"
)

// Slot is a candidate (start, end) pair carved out of a free interval. Slots
// are ephemeral: generated per run, never stored.
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateSlots walks the free intervals in input order and emits candidate
// slots of the given duration, starting at every granularity boundary from
// each interval's start. An interval shorter than the duration produces
// nothing. The result is a pure function of its inputs and, with free
// intervals sorted by start, is ordered by start time ascending; that
// ordering is the tie-break basis for assignment.
func GenerateSlots(free []availability.Interval, duration, granularity time.Duration) []Slot {
	if duration <= 0 || granularity <= 0 {
		return nil
	}
	var slots []Slot
	for _, iv := range free {
		latest := iv.End.Add(-duration)
		for start := iv.Start; !start.After(latest); start = start.Add(granularity) {
			slots = append(slots, Slot{Start: start, End: start.Add(duration)})
		}
	}
	return slots
}
