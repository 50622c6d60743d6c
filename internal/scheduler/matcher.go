package scheduler

import (
	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/domain"
)

// neutralScore is what a client with no stated preferences earns for every
// slot. It keeps unconstrained clients schedulable without letting them
// outbid a client whose preference actually matches.
const neutralScore = 0.5

// ScorePreferences rates a slot against the client's preferences, returning a
// value in [0,1]: the maximum weight among preference entries whose weekday
// and time window both match, zero when none match, and the neutral score for
// a client with no preferences at all.
func ScorePreferences(c *domain.Client, slot Slot) float64 {
	if len(c.Preferences) == 0 {
		return neutralScore
	}
	startMin := domain.MinutesOfDay(slot.Start)
	endMin := startMin + int(slot.End.Sub(slot.Start).Minutes())

	best := 0.0
	for _, p := range c.Preferences {
		if !p.MatchesDay(slot.Start.Weekday()) {
			continue
		}
		// A zero-valued window means "any time of day".
		if p.Window != (domain.TimeWindow{}) && !p.Window.Contains(startMin, endMin) {
			continue
		}
		w := p.Weight
		if w > 1 {
			w = 1
		}
		if w < 0 {
			w = 0
		}
		if w > best {
			best = w
		}
	}
	return best
}

// HardFeasible reports whether the slot may be considered for the client at
// all, independent of score. A slot is hard-infeasible when it falls on one
// of the client's blocked dates or violates the client's minimum gap against
// sessions already placed for them in this run.
func HardFeasible(c *domain.Client, slot Slot, placed []app.ScheduledSession) bool {
	if c.BlockedOn(slot.Start) {
		return false
	}
	gap := c.MinGap()
	for _, s := range placed {
		if s.ClientID != c.ID {
			continue
		}
		// Overlap with the client's own sessions is always infeasible;
		// with a gap requirement the exclusion zone widens.
		if slot.Start.Before(s.End.Add(gap)) && s.Start.Add(-gap).Before(slot.End) {
			return false
		}
	}
	return true
}
