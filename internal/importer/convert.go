package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dferrell/cadence/internal/domain"
)

// ConvertResult pairs the converted clients with their weekly session
// requests, in input order.
type ConvertResult struct {
	Clients  []*domain.Client
	Requests []*domain.SessionRequest
}

// Convert transforms validated records into domain objects ready for
// persistence. Call ValidateRecords first; Convert assumes the records are
// valid. Blank fields fall back: record > file defaults > hardcoded.
func Convert(records []ClientRecord, defaults Defaults) (*ConvertResult, error) {
	now := time.Now().UTC()
	result := &ConvertResult{}

	for _, rec := range records {
		days, err := ParseDayList(rec.PreferredDays)
		if err != nil {
			return nil, fmt.Errorf("line %d: preferred_days: %w", rec.Line, err)
		}
		windows, err := ParseTimeWindows(rec.PreferredTimes)
		if err != nil {
			return nil, fmt.Errorf("line %d: preferred_times: %w", rec.Line, err)
		}
		blocked, err := ParseDates(rec.UnavailableDates)
		if err != nil {
			return nil, fmt.Errorf("line %d: unavailable_dates: %w", rec.Line, err)
		}

		duration := domain.IntFromPtrWithDefault(60, intPtr(rec.SessionDuration), defaults.DurationMin)
		priority := domain.IntFromPtrWithDefault(1, intPtr(rec.Priority), defaults.Priority)
		count := domain.IntFromPtrWithDefault(1, intPtr(rec.WeeklySessions), defaults.Count)

		client := &domain.Client{
			ID:                 uuid.New().String(),
			Name:               rec.Name,
			Email:              rec.Email,
			Location:           ParseLocation(rec.Location),
			DefaultDurationMin: duration,
			Priority:           priority,
			Preferences:        BuildPreferences(days, windows),
			BlockedDates:       blocked,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		result.Clients = append(result.Clients, client)

		result.Requests = append(result.Requests, &domain.SessionRequest{
			ID:        uuid.New().String(),
			ClientID:  client.ID,
			Count:     count,
			CreatedAt: now,
		})
	}

	return result, nil
}

// BuildPreferences combines a day list with time windows. Days without
// windows restrict weekdays only; each window becomes its own preference so
// the entries stay disjunctive.
func BuildPreferences(days []time.Weekday, windows []domain.TimeWindow) []domain.Preference {
	if len(days) == 0 && len(windows) == 0 {
		return nil
	}
	if len(windows) == 0 {
		return []domain.Preference{{Weekdays: days, Weight: 1}}
	}
	prefs := make([]domain.Preference, 0, len(windows))
	for _, w := range windows {
		prefs = append(prefs, domain.Preference{Weekdays: days, Window: w, Weight: 1})
	}
	return prefs
}

func ParseLocation(s string) domain.Location {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote", "online", "virtual":
		return domain.LocationRemote
	default:
		return domain.LocationInPerson
	}
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
