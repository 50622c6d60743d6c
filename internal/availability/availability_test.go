package availability

import (
	"testing"
	"time"

	"github.com/dferrell/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-03-03 through Friday 2025-03-07.
var testHorizon = domain.Horizon{
	Start: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
}

func weekdayHours(startMin, endMin int) domain.WorkingHours {
	wh := domain.WorkingHours{}
	for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		wh[d] = []domain.TimeWindow{{StartMin: startMin, EndMin: endMin}}
	}
	return wh
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func TestFreeIntervals_NoBusy(t *testing.T) {
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), nil, testHorizon)
	require.NoError(t, err)
	require.Len(t, free, 5)
	assert.Equal(t, at(3, 9, 0), free[0].Start)
	assert.Equal(t, at(3, 17, 0), free[0].End)
	assert.Equal(t, at(7, 9, 0), free[4].Start)
}

func TestFreeIntervals_BusyCarvesHole(t *testing.T) {
	busy := []Interval{{Start: at(3, 10, 0), End: at(3, 11, 0)}}
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), busy, testHorizon)
	require.NoError(t, err)
	require.Len(t, free, 6)
	assert.Equal(t, at(3, 9, 0), free[0].Start)
	assert.Equal(t, at(3, 10, 0), free[0].End)
	assert.Equal(t, at(3, 11, 0), free[1].Start)
	assert.Equal(t, at(3, 17, 0), free[1].End)
}

func TestFreeIntervals_BusyCoversWholeDay(t *testing.T) {
	busy := []Interval{{Start: at(3, 9, 0), End: at(3, 17, 0)}}
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), busy, testHorizon)
	require.NoError(t, err)
	require.Len(t, free, 4)
	for _, iv := range free {
		assert.NotEqual(t, 3, iv.Start.Day(), "Monday should be fully blocked")
	}
}

func TestFreeIntervals_AdjacentBusyDoesNotTrim(t *testing.T) {
	// Busy ends exactly when working hours begin.
	busy := []Interval{{Start: at(3, 8, 0), End: at(3, 9, 0)}}
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), busy, testHorizon)
	require.NoError(t, err)
	require.Len(t, free, 5)
	assert.Equal(t, at(3, 9, 0), free[0].Start)
	assert.Equal(t, at(3, 17, 0), free[0].End)
}

func TestFreeIntervals_MidnightSpanningBusySplit(t *testing.T) {
	// Busy from Monday 16:00 through Tuesday 10:00 trims both days.
	busy := []Interval{{Start: at(3, 16, 0), End: at(4, 10, 0)}}
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), busy, testHorizon)
	require.NoError(t, err)
	require.Len(t, free, 5)
	assert.Equal(t, at(3, 16, 0), free[0].End, "Monday truncated at 16:00")
	assert.Equal(t, at(4, 10, 0), free[1].Start, "Tuesday starts at 10:00")
}

func TestFreeIntervals_SplitWorkingWindows(t *testing.T) {
	wh := domain.WorkingHours{
		time.Monday: {
			{StartMin: 6 * 60, EndMin: 9 * 60},
			{StartMin: 14 * 60, EndMin: 17 * 60},
		},
	}
	free, err := FreeIntervals(wh, nil, testHorizon)
	require.NoError(t, err)
	require.Len(t, free, 2)
	assert.Equal(t, at(3, 6, 0), free[0].Start)
	assert.Equal(t, at(3, 14, 0), free[1].Start)
}

func TestFreeIntervals_ClippedToHorizon(t *testing.T) {
	h := domain.Horizon{
		Start: at(3, 12, 0),
		End:   at(4, 12, 0),
	}
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), nil, h)
	require.NoError(t, err)
	require.Len(t, free, 2)
	assert.Equal(t, at(3, 12, 0), free[0].Start, "Monday clipped to horizon start")
	assert.Equal(t, at(4, 12, 0), free[1].End, "Tuesday clipped to horizon end")
}

func TestFreeIntervals_MalformedWorkingHours(t *testing.T) {
	wh := domain.WorkingHours{
		time.Monday: {
			{StartMin: 9 * 60, EndMin: 13 * 60},
			{StartMin: 12 * 60, EndMin: 17 * 60},
		},
	}
	_, err := FreeIntervals(wh, nil, testHorizon)
	require.Error(t, err)
	var cfgErr *domain.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestFreeIntervals_InvalidHorizon(t *testing.T) {
	_, err := FreeIntervals(weekdayHours(9*60, 17*60), nil, domain.Horizon{})
	assert.Error(t, err)
}

func TestFreeIntervals_SortedOutput(t *testing.T) {
	busy := []Interval{
		{Start: at(5, 10, 0), End: at(5, 11, 0)},
		{Start: at(3, 12, 0), End: at(3, 13, 0)},
	}
	free, err := FreeIntervals(weekdayHours(9*60, 17*60), busy, testHorizon)
	require.NoError(t, err)
	for i := 1; i < len(free); i++ {
		assert.True(t, free[i-1].Start.Before(free[i].Start), "output must be sorted by start")
	}
}

func TestInterval_Subtract(t *testing.T) {
	iv := Interval{Start: at(3, 9, 0), End: at(3, 17, 0)}

	// Middle hole.
	pieces := iv.Subtract(Interval{Start: at(3, 12, 0), End: at(3, 13, 0)})
	require.Len(t, pieces, 2)
	assert.Equal(t, at(3, 12, 0), pieces[0].End)
	assert.Equal(t, at(3, 13, 0), pieces[1].Start)

	// Leading overlap.
	pieces = iv.Subtract(Interval{Start: at(3, 8, 0), End: at(3, 10, 0)})
	require.Len(t, pieces, 1)
	assert.Equal(t, at(3, 10, 0), pieces[0].Start)

	// Full cover.
	pieces = iv.Subtract(Interval{Start: at(3, 8, 0), End: at(3, 18, 0)})
	assert.Empty(t, pieces)

	// Disjoint.
	pieces = iv.Subtract(Interval{Start: at(3, 18, 0), End: at(3, 19, 0)})
	require.Len(t, pieces, 1)
	assert.Equal(t, iv, pieces[0])
}

func TestSplitAtMidnights(t *testing.T) {
	iv := Interval{Start: at(3, 22, 0), End: at(5, 2, 0)}
	pieces := SplitAtMidnights(iv)
	require.Len(t, pieces, 3)
	assert.Equal(t, at(4, 0, 0), pieces[0].End)
	assert.Equal(t, at(4, 0, 0), pieces[1].Start)
	assert.Equal(t, at(5, 0, 0), pieces[1].End)
	assert.Equal(t, at(5, 2, 0), pieces[2].End)
}

func TestTotalMinutes(t *testing.T) {
	intervals := []Interval{
		{Start: at(3, 9, 0), End: at(3, 10, 30)},
		{Start: at(4, 9, 0), End: at(4, 9, 45)},
	}
	assert.Equal(t, 135, TotalMinutes(intervals))
	assert.Equal(t, 0, TotalMinutes(nil))
}
