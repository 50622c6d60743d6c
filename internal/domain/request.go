package domain

import "time"

// SessionRequest is one unit of scheduling work: place Count weekly sessions
// of DurationMin minutes for the referenced client.
type SessionRequest struct {
	ID       string
	ClientID string
	// DurationMin overrides the client's default session duration when > 0.
	DurationMin int
	// Count is the number of sessions requested per week of the horizon.
	Count int

	CreatedAt time.Time
}

// EffectiveDuration resolves the request duration against the client default.
func (r *SessionRequest) EffectiveDuration(c *Client) time.Duration {
	min := r.DurationMin
	if min == 0 && c != nil {
		min = c.DefaultDurationMin
	}
	return time.Duration(min) * time.Minute
}
