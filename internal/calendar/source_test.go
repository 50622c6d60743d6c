package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferrell/cadence/internal/availability"
)

func TestStaticSource_ClipsAndSorts(t *testing.T) {
	h := testHorizon(t)
	src := NewStaticSource([]availability.Interval{
		{Start: h.Start.Add(48 * time.Hour), End: h.Start.Add(50 * time.Hour)},
		{Start: h.Start.Add(-2 * time.Hour), End: h.Start.Add(time.Hour)},
		{Start: h.End, End: h.End.Add(time.Hour)}, // entirely past the horizon
	})

	busy, err := src.BusyIntervals(context.Background(), h)
	require.NoError(t, err)
	require.Len(t, busy, 2)
	assert.Equal(t, h.Start, busy[0].Start, "interval crossing the horizon start is clipped")
	assert.Equal(t, h.Start.Add(time.Hour), busy[0].End)
	assert.True(t, busy[0].Start.Before(busy[1].Start))
}

func TestMultiSource_MergesSorted(t *testing.T) {
	h := testHorizon(t)
	a := NewStaticSource([]availability.Interval{
		{Start: h.Start.Add(30 * time.Hour), End: h.Start.Add(31 * time.Hour)},
	})
	b := NewStaticSource([]availability.Interval{
		{Start: h.Start.Add(10 * time.Hour), End: h.Start.Add(11 * time.Hour)},
	})

	busy, err := NewMultiSource(a, b).BusyIntervals(context.Background(), h)
	require.NoError(t, err)
	require.Len(t, busy, 2)
	assert.True(t, busy[0].Start.Before(busy[1].Start))
}
