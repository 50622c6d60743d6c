package availability

import (
	"time"
)

// Interval is an absolute half-open [Start, End) time span.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Empty reports whether the interval has zero or negative length.
func (iv Interval) Empty() bool {
	return !iv.End.After(iv.Start)
}

// Overlaps reports whether two intervals share any span. Adjacent intervals
// (one ending exactly where the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Subtract removes other from iv, returning the zero, one, or two remaining
// pieces in ascending order.
func (iv Interval) Subtract(other Interval) []Interval {
	if !iv.Overlaps(other) {
		return []Interval{iv}
	}
	var out []Interval
	if iv.Start.Before(other.Start) {
		out = append(out, Interval{Start: iv.Start, End: other.Start})
	}
	if other.End.Before(iv.End) {
		out = append(out, Interval{Start: other.End, End: iv.End})
	}
	return out
}

// Clip constrains iv to the [start, end) bounds. The result may be empty.
func (iv Interval) Clip(start, end time.Time) Interval {
	clipped := iv
	if clipped.Start.Before(start) {
		clipped.Start = start
	}
	if clipped.End.After(end) {
		clipped.End = end
	}
	return clipped
}

// SplitAtMidnights breaks an interval spanning one or more day boundaries
// into per-day pieces.
func SplitAtMidnights(iv Interval) []Interval {
	if iv.Empty() {
		return nil
	}
	var out []Interval
	cur := iv.Start
	for {
		nextMidnight := time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location()).AddDate(0, 0, 1)
		if !nextMidnight.Before(iv.End) {
			out = append(out, Interval{Start: cur, End: iv.End})
			return out
		}
		out = append(out, Interval{Start: cur, End: nextMidnight})
		cur = nextMidnight
	}
}
