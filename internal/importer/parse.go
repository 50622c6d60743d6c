package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dferrell/cadence/internal/domain"
)

// dayparts maps named time-of-day phrases to windows of the day.
var dayparts = map[string]domain.TimeWindow{
	"early morning": {StartMin: 6 * 60, EndMin: 9 * 60},
	"morning":       {StartMin: 9 * 60, EndMin: 12 * 60},
	"afternoon":     {StartMin: 12 * 60, EndMin: 15 * 60},
	"evening":       {StartMin: 15 * 60, EndMin: 18 * 60},
	"night":         {StartMin: 18 * 60, EndMin: 21 * 60},
}

// flexiblePhrases mean "no time preference" and parse to an empty window list.
var flexiblePhrases = map[string]bool{
	"": true, "anytime": true, "any time": true, "any": true,
	"flexible": true, "whenever": true, "no preference": true,
}

// ParseDayList parses "Monday, Wednesday" into weekdays. An empty string
// means no restriction and yields nil.
func ParseDayList(s string) ([]time.Weekday, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "any") {
		return nil, nil
	}
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for _, part := range splitList(s) {
		d, err := domain.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days, nil
}

// ParseTimeWindows parses a preferred-times phrase into windows. Accepts
// explicit ranges ("6:00 to 9:00", "14:00-17:00"), clock times with AM/PM,
// named dayparts ("morning", "evening"), and flexibility phrases which yield
// an empty list.
func ParseTimeWindows(s string) ([]domain.TimeWindow, error) {
	if flexiblePhrases[strings.ToLower(strings.TrimSpace(s))] {
		return nil, nil
	}
	var windows []domain.TimeWindow
	for _, part := range splitList(s) {
		w, err := parseTimeWindow(part)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func parseTimeWindow(s string) (domain.TimeWindow, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if w, ok := dayparts[lower]; ok {
		return w, nil
	}

	var fromStr, toStr string
	switch {
	case strings.Contains(lower, " to "):
		parts := strings.SplitN(lower, " to ", 2)
		fromStr, toStr = parts[0], parts[1]
	case strings.Contains(lower, "-"):
		parts := strings.SplitN(lower, "-", 2)
		fromStr, toStr = parts[0], parts[1]
	default:
		return domain.TimeWindow{}, fmt.Errorf("unrecognized time range %q", s)
	}

	start, err := ParseClock(fromStr)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	end, err := ParseClock(toStr)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	// "9:00 to 5:00" without an explicit meridiem means 9am to 5pm
	if end <= start && !hasMeridiem(toStr) && end+12*60 <= 24*60 {
		end += 12 * 60
	}
	w := domain.TimeWindow{StartMin: start, EndMin: end}
	if !w.Valid() {
		return domain.TimeWindow{}, fmt.Errorf("invalid time range %q", s)
	}
	return w, nil
}

func hasMeridiem(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, suffix := range []string{"am", "pm", "a.m.", "p.m."} {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// ParseClock parses "6:00", "6:00 AM", "3:30 PM", "18:00" or bare "18" into
// minutes of day.
func ParseClock(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	meridiem := ""
	for _, suffix := range []string{"am", "pm", "a.m.", "p.m."} {
		if strings.HasSuffix(s, suffix) {
			meridiem = string(suffix[0])
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}

	hourStr, minStr := s, "0"
	if i := strings.Index(s, ":"); i >= 0 {
		hourStr, minStr = s[:i], s[i+1:]
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	switch meridiem {
	case "p":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("invalid clock time %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	case "a":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("invalid clock time %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour < 0 || hour > 24 {
			return 0, fmt.Errorf("invalid clock time %q", s)
		}
	}

	total := hour*60 + min
	if total > 24*60 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return total, nil
}

// ParseDates parses a list of YYYY-MM-DD dates.
func ParseDates(s string) ([]time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var dates []time.Time
	for _, part := range splitList(s) {
		d, err := time.Parse("2006-01-02", part)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", part)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// splitList splits on commas and semicolons and drops empty entries.
func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
