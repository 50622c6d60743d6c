// Package scheduler implements the slot-generation and session-assignment
// engine: a deterministic greedy placement with priority ordering, chosen for
// predictability over optimality. Every function here is pure; a run is
// atomic and produces either a complete schedule or a fatal ConfigError.
package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/availability"
	"github.com/dferrell/cadence/internal/domain"
)

// BuildInput carries everything one engine run consumes. All timestamps are
// assumed normalized to a single zone before they get here.
type BuildInput struct {
	WorkingHours   domain.WorkingHours
	Busy           []availability.Interval
	Clients        []*domain.Client
	Requests       []*domain.SessionRequest
	Horizon        domain.Horizon
	GranularityMin int
	Now            time.Time
}

// BuildSchedule turns working hours, busy intervals, and client session
// requests into a conflict-free schedule.
//
// The run proceeds through fixed phases: expand recurring requests into
// week-bound instances, sort them by (priority desc, request order), then
// greedily place each one into the highest-scoring hard-feasible slot,
// tie-broken by earliest start. Each placement subtracts its span from the
// remaining free intervals, so later instances can never double-book.
// Instances with no feasible placement are carried in the schedule's
// unplaced list with a reason code.
func BuildSchedule(in BuildInput) (*app.Schedule, error) {
	if in.GranularityMin <= 0 {
		return nil, domain.NewConfigError("granularity", "must be positive, got %d", in.GranularityMin)
	}

	free, err := availability.FreeIntervals(in.WorkingHours, in.Busy, in.Horizon)
	if err != nil {
		return nil, err
	}

	clientsByID := make(map[string]*domain.Client, len(in.Clients))
	for _, c := range in.Clients {
		clientsByID[c.ID] = c
	}

	instances := ExpandRequests(in.Requests, clientsByID)
	SortInstances(instances)

	granularity := time.Duration(in.GranularityMin) * time.Minute
	schedule := &app.Schedule{
		GeneratedAt:    in.Now,
		HorizonStart:   in.Horizon.Start,
		HorizonEnd:     in.Horizon.End,
		GranularityMin: in.GranularityMin,
		FreeMinutes:    availability.TotalMinutes(free),
	}

	for _, inst := range instances {
		session, unplaced := placeInstance(inst, free, granularity, in.Horizon, schedule.Sessions)
		if unplaced != nil {
			schedule.Unplaced = append(schedule.Unplaced, *unplaced)
			continue
		}
		schedule.Sessions = append(schedule.Sessions, *session)
		free = consume(free, availability.Interval{Start: session.Start, End: session.End})
	}

	sort.SliceStable(schedule.Sessions, func(i, j int) bool {
		return schedule.Sessions[i].Start.Before(schedule.Sessions[j].Start)
	})
	return schedule, nil
}

// placeInstance finds the best slot for one request instance against the
// current free intervals, or explains why none exists.
func placeInstance(
	inst RequestInstance,
	free []availability.Interval,
	granularity time.Duration,
	horizon domain.Horizon,
	placed []app.ScheduledSession,
) (*app.ScheduledSession, *app.UnplacedRequest) {
	if inst.Duration <= 0 {
		return nil, unplaced(inst, app.ReasonInvalidDuration,
			fmt.Sprintf("duration %d min is not positive", inst.Duration))
	}

	week := horizon.Week(inst.WeekIndex)
	if !week.End.After(week.Start) {
		return nil, unplaced(inst, app.ReasonNoAvailability,
			fmt.Sprintf("week %d lies outside the horizon", inst.WeekIndex+1))
	}

	weekFree := availability.ClipAll(free, week.Start, week.End)
	if len(weekFree) == 0 {
		return nil, unplaced(inst, app.ReasonNoAvailability,
			fmt.Sprintf("no free time left in week %d", inst.WeekIndex+1))
	}

	// Weekday preferences restrict which days may be considered at all;
	// time-of-day windows only influence the score.
	eligible := inst.Client.EligibleWeekdays()
	var candidates []availability.Interval
	longest := 0
	for _, iv := range weekFree {
		if !eligible[iv.Start.Weekday()] {
			continue
		}
		candidates = append(candidates, iv)
		if min := int(iv.Duration().Minutes()); min > longest {
			longest = min
		}
	}
	if len(candidates) == 0 {
		return nil, unplaced(inst, app.ReasonNoFeasibleSlot,
			"no free time on any weekday the client accepts")
	}
	if inst.Duration > longest {
		return nil, unplaced(inst, app.ReasonInvalidDuration,
			fmt.Sprintf("duration %d min exceeds every free interval (longest %d min)", inst.Duration, longest))
	}

	duration := time.Duration(inst.Duration) * time.Minute
	var best *Slot
	bestScore := -1.0
	for _, slot := range GenerateSlots(candidates, duration, granularity) {
		if overlapsAny(slot, placed) {
			continue
		}
		if !HardFeasible(inst.Client, slot, placed) {
			continue
		}
		score := ScorePreferences(inst.Client, slot)
		// Strict inequality keeps the earliest slot on score ties,
		// since slots arrive in start order.
		if score > bestScore {
			s := slot
			best = &s
			bestScore = score
		}
	}
	if best == nil {
		return nil, unplaced(inst, app.ReasonNoFeasibleSlot,
			"no slot satisfies the client's hard constraints")
	}

	return &app.ScheduledSession{
		ID:         fmt.Sprintf("%s-w%d", inst.RequestID, inst.WeekIndex+1),
		RequestID:  inst.RequestID,
		ClientID:   inst.Client.ID,
		ClientName: inst.Client.Name,
		WeekIndex:  inst.WeekIndex,
		Start:      best.Start,
		End:        best.End,
		Score:      bestScore,
	}, nil
}

// consume removes a placed span from the free intervals, keeping them sorted.
func consume(free []availability.Interval, span availability.Interval) []availability.Interval {
	var out []availability.Interval
	for _, iv := range free {
		out = append(out, iv.Subtract(span)...)
	}
	return out
}

func overlapsAny(slot Slot, placed []app.ScheduledSession) bool {
	for _, s := range placed {
		if slot.Start.Before(s.End) && s.Start.Before(slot.End) {
			return true
		}
	}
	return false
}

func unplaced(inst RequestInstance, reason app.UnscheduledReason, msg string) *app.UnplacedRequest {
	return &app.UnplacedRequest{
		RequestID:  inst.RequestID,
		ClientID:   inst.Client.ID,
		ClientName: inst.Client.Name,
		WeekIndex:  inst.WeekIndex,
		Reason:     reason,
		Message:    msg,
	}
}
