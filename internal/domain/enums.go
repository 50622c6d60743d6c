package domain

import (
	"fmt"
	"strings"
	"time"
)

type Location string

const (
	LocationInPerson Location = "in_person"
	LocationRemote   Location = "remote"
)

// ValidLocations is the canonical set of accepted location strings.
var ValidLocations = map[string]bool{
	"in_person": true, "remote": true,
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday converts a day name such as "Monday" (case-insensitive,
// surrounding whitespace ignored) into a time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", name)
	}
	return wd, nil
}
