package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreference_MatchesDay(t *testing.T) {
	p := Preference{Weekdays: []time.Weekday{time.Monday, time.Wednesday}}
	assert.True(t, p.MatchesDay(time.Monday))
	assert.True(t, p.MatchesDay(time.Wednesday))
	assert.False(t, p.MatchesDay(time.Friday))
}

func TestPreference_MatchesDay_EmptyMatchesAll(t *testing.T) {
	p := Preference{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, p.MatchesDay(d))
	}
}

func TestClient_MinGap_TakesStrictest(t *testing.T) {
	c := &Client{Preferences: []Preference{
		{MinGapMin: 60},
		{MinGapMin: 240},
		{MinGapMin: 0},
	}}
	assert.Equal(t, 4*time.Hour, c.MinGap())
}

func TestClient_MinGap_NoPreferences(t *testing.T) {
	c := &Client{}
	assert.Equal(t, time.Duration(0), c.MinGap())
}

func TestClient_EligibleWeekdays_Union(t *testing.T) {
	c := &Client{Preferences: []Preference{
		{Weekdays: []time.Weekday{time.Monday}},
		{Weekdays: []time.Weekday{time.Wednesday, time.Friday}},
	}}
	days := c.EligibleWeekdays()
	assert.True(t, days[time.Monday])
	assert.True(t, days[time.Wednesday])
	assert.True(t, days[time.Friday])
	assert.False(t, days[time.Tuesday])
}

func TestClient_EligibleWeekdays_UnrestrictedPreference(t *testing.T) {
	c := &Client{Preferences: []Preference{
		{Weekdays: []time.Weekday{time.Monday}},
		{}, // no weekday restriction
	}}
	assert.Len(t, c.EligibleWeekdays(), 7)
}

func TestClient_BlockedOn(t *testing.T) {
	c := &Client{BlockedDates: []time.Time{
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}}
	assert.True(t, c.BlockedOn(time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)))
	assert.False(t, c.BlockedOn(time.Date(2025, 3, 11, 14, 30, 0, 0, time.UTC)))
}

func TestSessionRequest_EffectiveDuration(t *testing.T) {
	c := &Client{DefaultDurationMin: 60}
	r := &SessionRequest{DurationMin: 90}
	assert.Equal(t, 90*time.Minute, r.EffectiveDuration(c))

	r = &SessionRequest{}
	assert.Equal(t, time.Hour, r.EffectiveDuration(c))
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday(" Monday ")
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	wd, err = ParseWeekday("friday")
	assert.NoError(t, err)
	assert.Equal(t, time.Friday, wd)

	_, err = ParseWeekday("Moonday")
	assert.Error(t, err)
}
