package app

import "time"

// UnscheduledReason explains why a request instance could not be placed.
// Reasons are carried as data in the schedule, not returned as errors.
type UnscheduledReason string

const (
	// ReasonNoFeasibleSlot: free time exists but no gap satisfies the
	// client's hard constraints.
	ReasonNoFeasibleSlot UnscheduledReason = "NO_FEASIBLE_SLOT"
	// ReasonNoAvailability: zero free intervals on any weekday the client
	// is eligible for within the instance's week.
	ReasonNoAvailability UnscheduledReason = "NO_AVAILABILITY"
	// ReasonInvalidDuration: the requested duration is non-positive or
	// longer than every free interval on the client's eligible weekdays.
	ReasonInvalidDuration UnscheduledReason = "INVALID_DURATION"
)

// ScheduledSession is a committed assignment of one request instance to one
// slot. No two sessions in a schedule overlap in time.
type ScheduledSession struct {
	ID         string
	RequestID  string
	ClientID   string
	ClientName string
	WeekIndex  int
	Start      time.Time
	End        time.Time
	// Score is the preference score the chosen slot earned, in [0,1].
	Score float64
}

// DurationMin returns the session length in whole minutes.
func (s ScheduledSession) DurationMin() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// UnplacedRequest records a request instance the engine could not place.
type UnplacedRequest struct {
	RequestID  string
	ClientID   string
	ClientName string
	WeekIndex  int
	Reason     UnscheduledReason
	Message    string
}

// Schedule is the immutable result of one engine run: the placed sessions in
// start order plus every request instance that could not be placed.
type Schedule struct {
	ID           string
	GeneratedAt  time.Time
	HorizonStart time.Time
	HorizonEnd   time.Time
	// GranularityMin is the slot alignment step the run used.
	GranularityMin int
	// FreeMinutes is the total free time the run started from; kept so
	// utilization can be derived from the schedule alone.
	FreeMinutes int
	Sessions    []ScheduledSession
	Unplaced    []UnplacedRequest
}

// ClientStat aggregates one client's share of a schedule.
type ClientStat struct {
	ClientID     string
	ClientName   string
	Sessions     int
	ScheduledMin int
}

// WeekdayStat aggregates one weekday's share of a schedule.
type WeekdayStat struct {
	Weekday  time.Weekday
	Sessions int
}

// ScheduleStats is a read-only aggregate computed from a schedule.
type ScheduleStats struct {
	TotalSessions int
	TotalUnplaced int
	ScheduledMin  int
	FreeMin       int
	// Utilization is scheduled time over free time, in [0,1]; zero for an
	// empty schedule.
	Utilization float64
	// PerClient is sorted by client name, then ID.
	PerClient []ClientStat
	// PerWeekday is sorted Sunday through Saturday, days with zero
	// sessions omitted.
	PerWeekday []WeekdayStat
}
