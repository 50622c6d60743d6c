package domain

import (
	"fmt"
	"time"
)

// TimeWindow is a half-open [Start, End) span within a single day, expressed
// in minutes since midnight. End may be at most 24*60.
type TimeWindow struct {
	StartMin int
	EndMin   int
}

// Valid reports whether the window is well-formed and non-empty.
func (w TimeWindow) Valid() bool {
	return w.StartMin >= 0 && w.EndMin <= 24*60 && w.StartMin < w.EndMin
}

// Contains reports whether [startMin, endMin) lies entirely inside the window.
func (w TimeWindow) Contains(startMin, endMin int) bool {
	return startMin >= w.StartMin && endMin <= w.EndMin
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		w.StartMin/60, w.StartMin%60, w.EndMin/60, w.EndMin%60)
}

// WorkingHours maps each weekday to the ordered, non-overlapping windows
// during which the coach is schedulable. A missing or empty entry means the
// coach does not work that day.
type WorkingHours map[time.Weekday][]TimeWindow

// Validate checks the per-day invariant: windows well-formed, sorted by start,
// and non-overlapping (adjacency is allowed). Violations are precondition
// errors, reported as ConfigError.
func (wh WorkingHours) Validate() error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		windows := wh[day]
		for i, w := range windows {
			if !w.Valid() {
				return NewConfigError("working_hours", "%s: malformed window %s", day, w)
			}
			if i > 0 {
				prev := windows[i-1]
				if w.StartMin < prev.StartMin {
					return NewConfigError("working_hours", "%s: windows not sorted (%s before %s)", day, prev, w)
				}
				if w.StartMin < prev.EndMin {
					return NewConfigError("working_hours", "%s: windows overlap (%s and %s)", day, prev, w)
				}
			}
		}
	}
	return nil
}

// MinutesOfDay returns the minutes elapsed since midnight for t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
