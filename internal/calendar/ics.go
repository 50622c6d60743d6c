package calendar

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dferrell/cadence/internal/availability"
	"github.com/dferrell/cadence/internal/domain"
)

// ICSSource reads busy intervals from an iCalendar feed. The location may be
// an http(s) URL or a local file path.
type ICSSource struct {
	location string
	http     *http.Client
}

func NewICSSource(location string) *ICSSource {
	return &ICSSource{
		location: location,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
			Timeout: 30 * time.Second,
		},
	}
}

func (s *ICSSource) BusyIntervals(ctx context.Context, horizon domain.Horizon) ([]availability.Interval, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	cal, err := ics.ParseCalendar(body)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar %s: %w", s.location, err)
	}

	var out []availability.Interval
	for _, ev := range cal.Events() {
		iv, ok := eventInterval(ev)
		if !ok {
			continue
		}
		clipped := iv.Clip(horizon.Start, horizon.End)
		if !clipped.Empty() {
			out = append(out, clipped)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (s *ICSSource) fetch(ctx context.Context) (io.ReadCloser, error) {
	if strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		resp, err := s.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching calendar %s: %w", s.location, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("calendar %s returned status %d", s.location, resp.StatusCode)
		}
		return resp.Body, nil
	}

	f, err := os.Open(s.location)
	if err != nil {
		return nil, fmt.Errorf("opening calendar file: %w", err)
	}
	return f, nil
}

// eventInterval maps a VEVENT to a busy interval. Cancelled and transparent
// events do not block time. All-day events block their full calendar days.
func eventInterval(ev *ics.VEvent) (availability.Interval, bool) {
	if propValue(ev, "STATUS") == "CANCELLED" {
		return availability.Interval{}, false
	}
	if propValue(ev, "TRANSP") == "TRANSPARENT" {
		return availability.Interval{}, false
	}

	start, err := ev.GetStartAt()
	if err != nil {
		start, err = ev.GetAllDayStartAt()
		if err != nil {
			return availability.Interval{}, false
		}
		end, err := ev.GetAllDayEndAt()
		if err != nil {
			// DTEND is optional for all-day events, default to one day
			end = start.AddDate(0, 0, 1)
		}
		return availability.Interval{Start: start, End: end}, end.After(start)
	}

	end, err := ev.GetEndAt()
	if err != nil {
		return availability.Interval{}, false
	}
	if !end.After(start) {
		return availability.Interval{}, false
	}
	return availability.Interval{Start: start, End: end}, true
}

func propValue(ev *ics.VEvent, name string) string {
	p := ev.GetProperty(ics.ComponentProperty(name))
	if p == nil {
		return ""
	}
	return p.Value
}
