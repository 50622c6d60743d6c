package scheduler

import (
	"sort"

	"github.com/dferrell/cadence/internal/domain"
)

// RequestInstance is one concrete session to place: a weekly recurrence of a
// SessionRequest pinned to a single week of the horizon.
type RequestInstance struct {
	RequestID string
	Client    *domain.Client
	Duration  int // minutes
	WeekIndex int
	// Order is the position of the originating request in the input slice;
	// it is the deterministic tie-break after priority.
	Order int
}

// ExpandRequests turns each SessionRequest into Count independent instances,
// one per week counted from the horizon start. Instances are emitted even for
// weeks past the horizon end; the engine reports those as unplaced rather
// than dropping them silently.
func ExpandRequests(requests []*domain.SessionRequest, clientsByID map[string]*domain.Client) []RequestInstance {
	var instances []RequestInstance
	for order, req := range requests {
		c := clientsByID[req.ClientID]
		if c == nil {
			continue
		}
		count := req.Count
		if count < 1 {
			count = 1
		}
		duration := int(req.EffectiveDuration(c).Minutes())
		for week := 0; week < count; week++ {
			instances = append(instances, RequestInstance{
				RequestID: req.ID,
				Client:    c,
				Duration:  duration,
				WeekIndex: week,
				Order:     order,
			})
		}
	}
	return instances
}

// SortInstances orders request instances by client priority weight
// descending, then original request order. The sort is stable so equal keys
// keep their expansion order; this is the engine's fairness rule and must not
// depend on anything else.
func SortInstances(instances []RequestInstance) {
	sort.SliceStable(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		if a.Client.Priority != b.Client.Priority {
			return a.Client.Priority > b.Client.Priority
		}
		return a.Order < b.Order
	})
}
