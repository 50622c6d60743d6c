package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dferrell/cadence/internal/domain"
)

func TestParseDayList(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"Monday, Wednesday", []time.Weekday{time.Monday, time.Wednesday}, false},
		{"monday;friday", []time.Weekday{time.Monday, time.Friday}, false},
		{" Tuesday ", []time.Weekday{time.Tuesday}, false},
		{"Monday, Monday", []time.Weekday{time.Monday}, false},
		{"", nil, false},
		{"any", nil, false},
		{"Blursday", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseDayList(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseTimeWindows_Ranges(t *testing.T) {
	got, err := ParseTimeWindows("6:00 to 9:00, 14:00-17:00")
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeWindow{
		{StartMin: 360, EndMin: 540},
		{StartMin: 840, EndMin: 1020},
	}, got)
}

func TestParseTimeWindows_Dayparts(t *testing.T) {
	tests := []struct {
		input string
		want  domain.TimeWindow
	}{
		{"early morning", domain.TimeWindow{StartMin: 360, EndMin: 540}},
		{"Morning", domain.TimeWindow{StartMin: 540, EndMin: 720}},
		{"afternoon", domain.TimeWindow{StartMin: 720, EndMin: 900}},
		{"evening", domain.TimeWindow{StartMin: 900, EndMin: 1080}},
		{"night", domain.TimeWindow{StartMin: 1080, EndMin: 1260}},
	}
	for _, tt := range tests {
		got, err := ParseTimeWindows(tt.input)
		require.NoError(t, err, tt.input)
		require.Len(t, got, 1, tt.input)
		assert.Equal(t, tt.want, got[0], tt.input)
	}
}

func TestParseTimeWindows_Flexible(t *testing.T) {
	for _, input := range []string{"", "anytime", "Flexible", "no preference", "  any  "} {
		got, err := ParseTimeWindows(input)
		require.NoError(t, err, input)
		assert.Nil(t, got, input)
	}
}

func TestParseTimeWindows_Meridiem(t *testing.T) {
	got, err := ParseTimeWindows("6:00 AM to 8:30 AM, 3:00 PM to 6:00 PM")
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeWindow{
		{StartMin: 360, EndMin: 510},
		{StartMin: 900, EndMin: 1080},
	}, got)
}

func TestParseTimeWindows_ImpliedPM(t *testing.T) {
	// a range ending before it starts rolls the end into the afternoon
	got, err := ParseTimeWindows("9:00 to 5:00")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.TimeWindow{StartMin: 540, EndMin: 1020}, got[0])
}

func TestParseTimeWindows_Invalid(t *testing.T) {
	for _, input := range []string{"sometime later", "25:00 to 26:00", "9:99 to 10:00"} {
		_, err := ParseTimeWindows(input)
		assert.Error(t, err, input)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"6:00", 360},
		{"18:30", 1110},
		{"12:00 PM", 720},
		{"12:00 AM", 0},
		{"1:05 pm", 785},
		{"9", 540},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseDates(t *testing.T) {
	got, err := ParseDates("2025-03-04, 2025-03-11")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), got[0])

	_, err = ParseDates("03/04/2025")
	assert.Error(t, err)

	got, err = ParseDates("")
	require.NoError(t, err)
	assert.Nil(t, got)
}
