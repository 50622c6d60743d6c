package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/dferrell/cadence/internal/domain"
)

// ClientOption customizes a test client.
type ClientOption func(*domain.Client)

func WithPriority(p int) ClientOption {
	return func(c *domain.Client) { c.Priority = p }
}

func WithLocation(l domain.Location) ClientOption {
	return func(c *domain.Client) { c.Location = l }
}

func WithDefaultDuration(min int) ClientOption {
	return func(c *domain.Client) { c.DefaultDurationMin = min }
}

func WithPreference(p domain.Preference) ClientOption {
	return func(c *domain.Client) { c.Preferences = append(c.Preferences, p) }
}

func WithBlockedDate(d time.Time) ClientOption {
	return func(c *domain.Client) { c.BlockedDates = append(c.BlockedDates, d) }
}

// NewTestClient builds a client with sane defaults for repository and
// service tests.
func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Client{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              "",
		Location:           domain.LocationInPerson,
		DefaultDurationMin: 60,
		Priority:           1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestRequest builds a session request bound to the given client.
func NewTestRequest(clientID string, count int) *domain.SessionRequest {
	return &domain.SessionRequest{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Count:     count,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// NewTestHorizon returns a one week horizon starting Monday 2025-03-03 UTC.
func NewTestHorizon(weeks int) domain.Horizon {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	return domain.Horizon{Start: start, End: start.AddDate(0, 0, 7*weeks)}
}

// NewTestWorkingHours covers Monday through Friday 08:00 to 18:00.
func NewTestWorkingHours() domain.WorkingHours {
	window := domain.TimeWindow{StartMin: 8 * 60, EndMin: 18 * 60}
	return domain.WorkingHours{
		time.Monday:    {window},
		time.Tuesday:   {window},
		time.Wednesday: {window},
		time.Thursday:  {window},
		time.Friday:    {window},
	}
}
