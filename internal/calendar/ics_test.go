package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferrell/cadence/internal/domain"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//test//EN
BEGIN:VEVENT
UID:ev1
DTSTART:20250303T100000Z
DTEND:20250303T113000Z
SUMMARY:Dentist
END:VEVENT
BEGIN:VEVENT
UID:ev2
DTSTART:20250305T140000Z
DTEND:20250305T150000Z
STATUS:CANCELLED
SUMMARY:Cancelled thing
END:VEVENT
BEGIN:VEVENT
UID:ev3
DTSTART:20250306T090000Z
DTEND:20250306T100000Z
TRANSP:TRANSPARENT
SUMMARY:FYI only
END:VEVENT
BEGIN:VEVENT
UID:ev4
DTSTART;VALUE=DATE:20250304
DTEND;VALUE=DATE:20250305
SUMMARY:Conference day
END:VEVENT
BEGIN:VEVENT
UID:ev5
DTSTART:20250401T100000Z
DTEND:20250401T110000Z
SUMMARY:Outside horizon
END:VEVENT
END:VCALENDAR
`

func testHorizon(t *testing.T) domain.Horizon {
	t.Helper()
	h := domain.Horizon{
		Start: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, h.Validate())
	return h
}

func TestICSSource_FetchesAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(sampleICS))
	}))
	defer srv.Close()

	src := NewICSSource(srv.URL)
	busy, err := src.BusyIntervals(context.Background(), testHorizon(t))
	require.NoError(t, err)

	// ev1 timed, ev4 all-day. Cancelled, transparent and out-of-horizon
	// events are dropped.
	require.Len(t, busy, 2)
	assert.Equal(t, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), busy[0].Start)
	assert.Equal(t, time.Date(2025, 3, 3, 11, 30, 0, 0, time.UTC), busy[0].End)
	assert.Equal(t, 24*time.Hour, busy[1].Duration())
	assert.Equal(t, time.March, busy[1].Start.Month())
	assert.Equal(t, 4, busy[1].Start.Day())
}

func TestICSSource_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewICSSource(srv.URL)
	_, err := src.BusyIntervals(context.Background(), testHorizon(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestICSSource_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a calendar"))
	}))
	defer srv.Close()

	src := NewICSSource(srv.URL)
	_, err := src.BusyIntervals(context.Background(), testHorizon(t))
	assert.Error(t, err)
}

func TestICSSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busy.ics")
	require.NoError(t, os.WriteFile(path, []byte(sampleICS), 0o644))

	src := NewICSSource(path)
	busy, err := src.BusyIntervals(context.Background(), testHorizon(t))
	require.NoError(t, err)
	assert.Len(t, busy, 2)
}

func TestICSSource_MissingFile(t *testing.T) {
	src := NewICSSource(filepath.Join(t.TempDir(), "absent.ics"))
	_, err := src.BusyIntervals(context.Background(), testHorizon(t))
	assert.Error(t, err)
}

func TestICSSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	src := NewICSSource(srv.URL)
	_, err := src.BusyIntervals(ctx, testHorizon(t))
	assert.Error(t, err)
}
