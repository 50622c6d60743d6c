package scheduler

import (
	"sort"
	"time"

	"github.com/dferrell/cadence/internal/app"
)

// Summarize computes read-only aggregate statistics over a schedule. It never
// mutates its input and tolerates an empty schedule: all counts zero and a
// utilization of 0, with no division by zero.
func Summarize(schedule *app.Schedule) app.ScheduleStats {
	stats := app.ScheduleStats{}
	if schedule == nil {
		return stats
	}
	stats.TotalSessions = len(schedule.Sessions)
	stats.TotalUnplaced = len(schedule.Unplaced)
	stats.FreeMin = schedule.FreeMinutes

	byClient := make(map[string]*app.ClientStat)
	byWeekday := make(map[time.Weekday]int)
	for _, s := range schedule.Sessions {
		min := s.DurationMin()
		stats.ScheduledMin += min

		cs, ok := byClient[s.ClientID]
		if !ok {
			cs = &app.ClientStat{ClientID: s.ClientID, ClientName: s.ClientName}
			byClient[s.ClientID] = cs
		}
		cs.Sessions++
		cs.ScheduledMin += min

		byWeekday[s.Start.Weekday()]++
	}

	for _, cs := range byClient {
		stats.PerClient = append(stats.PerClient, *cs)
	}
	sort.Slice(stats.PerClient, func(i, j int) bool {
		a, b := stats.PerClient[i], stats.PerClient[j]
		if a.ClientName != b.ClientName {
			return a.ClientName < b.ClientName
		}
		return a.ClientID < b.ClientID
	})

	for d := time.Sunday; d <= time.Saturday; d++ {
		if n := byWeekday[d]; n > 0 {
			stats.PerWeekday = append(stats.PerWeekday, app.WeekdayStat{Weekday: d, Sessions: n})
		}
	}

	if stats.FreeMin > 0 {
		stats.Utilization = float64(stats.ScheduledMin) / float64(stats.FreeMin)
	}
	return stats
}
