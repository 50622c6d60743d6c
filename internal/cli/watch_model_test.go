package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/teatest"
)

func watchSchedule() *app.Schedule {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	return &app.Schedule{
		ID:           "s1",
		HorizonStart: start,
		HorizonEnd:   start.AddDate(0, 0, 14),
		Sessions: []app.ScheduledSession{
			{ID: "r1-w1", ClientName: "Ana", WeekIndex: 0,
				Start: start.Add(9 * time.Hour), End: start.Add(10 * time.Hour)},
			{ID: "r1-w2", ClientName: "Ana", WeekIndex: 1,
				Start: start.AddDate(0, 0, 7).Add(9 * time.Hour), End: start.AddDate(0, 0, 7).Add(10 * time.Hour)},
		},
		Unplaced: []app.UnplacedRequest{
			{RequestID: "r2", ClientName: "Zoe", WeekIndex: 1, Reason: app.ReasonNoAvailability},
		},
	}
}

func newWatchDriver(t *testing.T, s *app.Schedule) *teatest.Driver {
	t.Helper()
	return teatest.New(t, newWeekModel(s), teatest.WithSize(80, 24))
}

func TestWeekModel_ShowsFirstWeek(t *testing.T) {
	d := newWatchDriver(t, watchSchedule())
	view := d.View()
	assert.Contains(t, view, "Week 1 of 2")
	assert.Contains(t, view, "Ana")
	assert.NotContains(t, view, "Zoe", "week 2 unplaced hidden on week 1")
}

func TestWeekModel_NavigatesWeeks(t *testing.T) {
	d := newWatchDriver(t, watchSchedule())

	d.PressKey('l')
	view := d.View()
	assert.Contains(t, view, "Week 2 of 2")
	assert.Contains(t, view, "Zoe")

	// already at the last week
	d.PressKey('l')
	assert.Contains(t, d.View(), "Week 2 of 2")

	d.PressKey('h')
	assert.Contains(t, d.View(), "Week 1 of 2")

	d.PressRight()
	assert.Contains(t, d.View(), "Week 2 of 2")
	d.PressLeft()
	assert.Contains(t, d.View(), "Week 1 of 2")
}

func TestWeekModel_QuitKeys(t *testing.T) {
	d := newWatchDriver(t, watchSchedule())
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d = newWatchDriver(t, watchSchedule())
	d.PressEsc()
	assert.True(t, d.Quitting)
}

func TestWeekModel_EmptyWeek(t *testing.T) {
	s := watchSchedule()
	s.Sessions = s.Sessions[:1]
	s.Unplaced = nil
	d := newWatchDriver(t, s)
	d.PressKey('l')
	assert.Contains(t, d.View(), "No sessions this week.")
}
