package domain

import "time"

// Preference is one acceptable placement pattern for a client's sessions.
// Multiple preferences on a client are disjunctive: a slot satisfying any one
// of them counts as preferred.
type Preference struct {
	Weekdays []time.Weekday
	Window   TimeWindow
	// MinGapMin is the minimum gap, in minutes, required between this
	// client's sessions. Zero means no gap constraint.
	MinGapMin int
	// Weight in [0,1] is the score a matching slot earns.
	Weight float64
}

// MatchesDay reports whether day is one of the preference's weekdays.
// An empty weekday list matches every day.
func (p Preference) MatchesDay(day time.Weekday) bool {
	if len(p.Weekdays) == 0 {
		return true
	}
	for _, d := range p.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Client is a person requesting coaching sessions.
type Client struct {
	ID                 string
	Name               string
	Email              string
	Location           Location
	DefaultDurationMin int
	// Priority is the tie-break weight used when clients compete for the
	// same slot; higher wins.
	Priority    int
	Preferences []Preference
	// BlockedDates are whole days (midnight timestamps) on which the client
	// cannot be scheduled, regardless of preferences.
	BlockedDates []time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinGap returns the strictest (largest) gap requirement across the client's
// preferences. Preferences are disjunctive for placement, but the gap is a
// hard constraint, so the most conservative value applies.
func (c *Client) MinGap() time.Duration {
	gap := 0
	for _, p := range c.Preferences {
		if p.MinGapMin > gap {
			gap = p.MinGapMin
		}
	}
	return time.Duration(gap) * time.Minute
}

// EligibleWeekdays returns the union of weekdays named by the client's
// preferences. A client with no preferences (or a preference with no weekday
// restriction) is eligible every day.
func (c *Client) EligibleWeekdays() map[time.Weekday]bool {
	if len(c.Preferences) == 0 {
		return allWeekdays()
	}
	days := make(map[time.Weekday]bool)
	for _, p := range c.Preferences {
		if len(p.Weekdays) == 0 {
			return allWeekdays()
		}
		for _, d := range p.Weekdays {
			days[d] = true
		}
	}
	return days
}

// BlockedOn reports whether the client is blocked on the calendar day of t.
func (c *Client) BlockedOn(t time.Time) bool {
	for _, d := range c.BlockedDates {
		if d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day() {
			return true
		}
	}
	return false
}

func allWeekdays() map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = true
	}
	return days
}
