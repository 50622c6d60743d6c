package importer

import (
	"fmt"
	"strconv"
	"strings"
)

var validLocations = map[string]bool{
	"in_person": true, "in person": true, "in-person": true, "lab": true,
	"remote": true, "online": true, "virtual": true,
}

// ValidateRecords checks raw CSV records before conversion. Returns every
// validation error found so a user can fix the file in one pass.
func ValidateRecords(records []ClientRecord) []error {
	var errs []error

	if len(records) == 0 {
		return []error{fmt.Errorf("no client records found")}
	}

	seen := make(map[string]int)
	for _, rec := range records {
		prefix := fmt.Sprintf("line %d", rec.Line)

		if rec.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		} else {
			key := strings.ToLower(rec.Name)
			if prev, ok := seen[key]; ok {
				errs = append(errs, fmt.Errorf("%s: duplicate client %q (first seen on line %d)", prefix, rec.Name, prev))
			} else {
				seen[key] = rec.Line
			}
		}

		if rec.Email != "" && !strings.Contains(rec.Email, "@") {
			errs = append(errs, fmt.Errorf("%s: invalid email %q", prefix, rec.Email))
		}

		if rec.Location != "" && !validLocations[strings.ToLower(rec.Location)] {
			errs = append(errs, fmt.Errorf("%s: invalid location %q", prefix, rec.Location))
		}

		errs = append(errs, validatePositiveInt(prefix+": weekly_sessions", rec.WeeklySessions)...)
		errs = append(errs, validatePositiveInt(prefix+": session_duration", rec.SessionDuration)...)

		if rec.Priority != "" {
			if _, err := strconv.Atoi(rec.Priority); err != nil {
				errs = append(errs, fmt.Errorf("%s: priority: invalid integer %q", prefix, rec.Priority))
			}
		}

		if _, err := ParseDayList(rec.PreferredDays); err != nil {
			errs = append(errs, fmt.Errorf("%s: preferred_days: %v", prefix, err))
		}
		if _, err := ParseTimeWindows(rec.PreferredTimes); err != nil {
			errs = append(errs, fmt.Errorf("%s: preferred_times: %v", prefix, err))
		}
		if _, err := ParseDates(rec.UnavailableDates); err != nil {
			errs = append(errs, fmt.Errorf("%s: unavailable_dates: %v", prefix, err))
		}
	}

	return errs
}

func validatePositiveInt(field, s string) []error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return []error{fmt.Errorf("%s: invalid integer %q", field, s)}
	}
	if n <= 0 {
		return []error{fmt.Errorf("%s must be positive, got %d", field, n)}
	}
	return nil
}
