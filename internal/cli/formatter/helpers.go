package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dferrell/cadence/internal/domain"
)

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// ClockRange renders a same-day interval as "Mon Mar 03 09:00-10:00".
func ClockRange(start, end time.Time) string {
	return fmt.Sprintf("%s %s-%s",
		start.Format("Mon Jan 02"),
		start.Format("15:04"),
		end.Format("15:04"))
}

// LocationPill returns a colored location indicator.
func LocationPill(l domain.Location) string {
	switch l {
	case domain.LocationRemote:
		return StyleBlue.Render("◌ remote")
	case domain.LocationInPerson:
		return StyleGreen.Render("● in person")
	default:
		return StyleDim.Render(string(l))
	}
}

// ReasonPill returns a colored label for an unplaced-request reason.
func ReasonPill(reason string) string {
	switch reason {
	case "NO_AVAILABILITY":
		return StyleRed.Render("no availability")
	case "NO_FEASIBLE_SLOT":
		return StyleYellow.Render("no feasible slot")
	case "INVALID_DURATION":
		return StylePurple.Render("invalid duration")
	default:
		return StyleDim.Render(strings.ToLower(reason))
	}
}

// Preferences renders a client's preference entries as one line each.
func Preferences(prefs []domain.Preference) []string {
	lines := make([]string, 0, len(prefs))
	for _, p := range prefs {
		var parts []string
		if len(p.Weekdays) > 0 {
			names := make([]string, len(p.Weekdays))
			for i, d := range p.Weekdays {
				names[i] = d.String()[:3]
			}
			parts = append(parts, strings.Join(names, "/"))
		} else {
			parts = append(parts, "any day")
		}
		if p.Window != (domain.TimeWindow{}) {
			parts = append(parts, fmt.Sprintf("%s-%s",
				clockOfDay(p.Window.StartMin), clockOfDay(p.Window.EndMin)))
		} else {
			parts = append(parts, "any time")
		}
		if p.MinGapMin > 0 {
			parts = append(parts, fmt.Sprintf("gap %s", FormatMinutes(p.MinGapMin)))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// BlockedDates renders blocked days as "2025-04-14, 2025-04-15", sorted.
func BlockedDates(dates []time.Time) string {
	if len(dates) == 0 {
		return ""
	}
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = d.Format("2006-01-02")
	}
	return strings.Join(parts, ", ")
}

func clockOfDay(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
