package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// joinWeekdays encodes a weekday list as comma-separated integers for
// storage. An empty list encodes to the empty string.
func joinWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// splitWeekdays is the inverse of joinWeekdays.
func splitWeekdays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid stored weekday %q", p)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}

func parseStoredTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
