// Package availability derives the coach's free intervals from working-hour
// rules and externally sourced busy periods. Free intervals are never stored:
// they are recomputed from their inputs on every run.
package availability

import (
	"sort"
	"time"

	"github.com/dferrell/cadence/internal/domain"
)

// FreeIntervals computes the ordered set of absolute spans within the horizon
// where the coach is inside working hours and not busy.
//
// For each day in the horizon the weekday's working windows are expanded to
// absolute intervals, clipped to the horizon bounds, and every overlapping
// busy interval is subtracted. Busy intervals spanning midnight are split at
// day boundaries first. Adjacency does not count as overlap, and zero-length
// results are dropped. Malformed working hours fail with a ConfigError.
func FreeIntervals(wh domain.WorkingHours, busy []Interval, horizon domain.Horizon) ([]Interval, error) {
	if err := horizon.Validate(); err != nil {
		return nil, err
	}
	if err := wh.Validate(); err != nil {
		return nil, err
	}

	busyByDay := indexBusyByDay(busy)

	var free []Interval
	for _, day := range horizon.Days() {
		windows := wh[day.Weekday()]
		if len(windows) == 0 {
			continue
		}
		dayBusy := busyByDay[dayKey(day)]
		for _, w := range windows {
			iv := Interval{
				Start: day.Add(time.Duration(w.StartMin) * time.Minute),
				End:   day.Add(time.Duration(w.EndMin) * time.Minute),
			}
			iv = iv.Clip(horizon.Start, horizon.End)
			if iv.Empty() {
				continue
			}
			for _, piece := range subtractAll(iv, dayBusy) {
				if !piece.Empty() {
					free = append(free, piece)
				}
			}
		}
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].Start.Before(free[j].Start)
	})
	return free, nil
}

// TotalMinutes sums the lengths of the given intervals in whole minutes.
func TotalMinutes(intervals []Interval) int {
	var total time.Duration
	for _, iv := range intervals {
		total += iv.Duration()
	}
	return int(total / time.Minute)
}

// ClipAll constrains every interval to [start, end), dropping empties.
func ClipAll(intervals []Interval, start, end time.Time) []Interval {
	var out []Interval
	for _, iv := range intervals {
		clipped := iv.Clip(start, end)
		if !clipped.Empty() {
			out = append(out, clipped)
		}
	}
	return out
}

func subtractAll(iv Interval, busy []Interval) []Interval {
	remaining := []Interval{iv}
	for _, b := range busy {
		var next []Interval
		for _, piece := range remaining {
			next = append(next, piece.Subtract(b)...)
		}
		remaining = next
		if len(remaining) == 0 {
			break
		}
	}
	return remaining
}

func indexBusyByDay(busy []Interval) map[string][]Interval {
	byDay := make(map[string][]Interval)
	for _, b := range busy {
		if b.Empty() {
			continue
		}
		for _, piece := range SplitAtMidnights(b) {
			key := dayKey(piece.Start)
			byDay[key] = append(byDay[key], piece)
		}
	}
	return byDay
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
