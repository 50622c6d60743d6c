package domain

import "time"

// Horizon is the bounded [Start, End) date range a schedule is computed over.
// Both bounds are absolute timestamps already normalized to one zone.
type Horizon struct {
	Start time.Time
	End   time.Time
}

// Validate checks the horizon is non-empty and well-ordered.
func (h Horizon) Validate() error {
	if h.Start.IsZero() || h.End.IsZero() {
		return NewConfigError("horizon", "start and end are required")
	}
	if !h.End.After(h.Start) {
		return NewConfigError("horizon", "end %s must be after start %s",
			h.End.Format(time.RFC3339), h.Start.Format(time.RFC3339))
	}
	return nil
}

// Days returns the midnight of every calendar day touched by the horizon,
// in ascending order.
func (h Horizon) Days() []time.Time {
	var days []time.Time
	day := time.Date(h.Start.Year(), h.Start.Month(), h.Start.Day(), 0, 0, 0, 0, h.Start.Location())
	for day.Before(h.End) {
		days = append(days, day)
		day = day.AddDate(0, 0, 1)
	}
	return days
}

// Weeks returns the number of 7-day windows (the last possibly partial)
// counted from the horizon start.
func (h Horizon) Weeks() int {
	days := int(h.End.Sub(h.Start).Hours() / 24)
	if h.End.Sub(h.Start)%(24*time.Hour) != 0 {
		days++
	}
	weeks := days / 7
	if days%7 != 0 {
		weeks++
	}
	return weeks
}

// Week returns the bounds of the i-th 7-day window, clipped to the horizon.
// The returned horizon is empty (Start == End) when i is past the end.
func (h Horizon) Week(i int) Horizon {
	start := h.Start.AddDate(0, 0, 7*i)
	end := h.Start.AddDate(0, 0, 7*(i+1))
	if start.After(h.End) {
		start = h.End
	}
	if end.After(h.End) {
		end = h.End
	}
	return Horizon{Start: start, End: end}
}
