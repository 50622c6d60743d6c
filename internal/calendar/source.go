package calendar

import (
	"context"
	"sort"

	"github.com/dferrell/cadence/internal/availability"
	"github.com/dferrell/cadence/internal/domain"
)

// Source yields the busy intervals that block scheduling inside a horizon.
type Source interface {
	// BusyIntervals returns every busy interval overlapping the horizon,
	// clipped to it and sorted by start time.
	BusyIntervals(ctx context.Context, horizon domain.Horizon) ([]availability.Interval, error)
}

// StaticSource serves a fixed set of busy intervals. Used for manually
// entered blocks and in tests.
type StaticSource struct {
	Intervals []availability.Interval
}

func NewStaticSource(intervals []availability.Interval) *StaticSource {
	return &StaticSource{Intervals: intervals}
}

func (s *StaticSource) BusyIntervals(_ context.Context, horizon domain.Horizon) ([]availability.Interval, error) {
	out := make([]availability.Interval, 0, len(s.Intervals))
	for _, iv := range s.Intervals {
		clipped := iv.Clip(horizon.Start, horizon.End)
		if !clipped.Empty() {
			out = append(out, clipped)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// MultiSource merges the busy intervals of several sources. A failure in any
// source fails the whole fetch.
type MultiSource struct {
	sources []Source
}

func NewMultiSource(sources ...Source) *MultiSource {
	return &MultiSource{sources: sources}
}

func (m *MultiSource) BusyIntervals(ctx context.Context, horizon domain.Horizon) ([]availability.Interval, error) {
	var out []availability.Interval
	for _, src := range m.sources {
		ivs, err := src.BusyIntervals(ctx, horizon)
		if err != nil {
			return nil, err
		}
		out = append(out, ivs...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
