package formatter

import (
	"fmt"
	"strings"

	"github.com/dferrell/cadence/internal/app"
)

// RenderStats renders schedule aggregates: totals, utilization, then
// per-client and per-weekday breakdowns.
func RenderStats(stats app.ScheduleStats) string {
	var b strings.Builder

	b.WriteString(Header("Totals") + "\n")
	b.WriteString(fmt.Sprintf("  Sessions     %s\n", Bold(fmt.Sprintf("%d", stats.TotalSessions))))
	b.WriteString(fmt.Sprintf("  Unplaced     %s\n", Bold(fmt.Sprintf("%d", stats.TotalUnplaced))))
	b.WriteString(fmt.Sprintf("  Scheduled    %s of %s free\n",
		Bold(FormatMinutes(stats.ScheduledMin)), FormatMinutes(stats.FreeMin)))
	b.WriteString(fmt.Sprintf("  Utilization  %s\n", utilizationStyled(stats.Utilization)))

	if len(stats.PerClient) > 0 {
		rows := make([][]string, 0, len(stats.PerClient))
		for _, c := range stats.PerClient {
			rows = append(rows, []string{
				c.ClientName,
				fmt.Sprintf("%d", c.Sessions),
				FormatMinutes(c.ScheduledMin),
			})
		}
		b.WriteString("\n" + Header("Per Client") + "\n")
		b.WriteString(RenderTable([]string{"Client", "Sessions", "Time"}, rows))
	}

	if len(stats.PerWeekday) > 0 {
		rows := make([][]string, 0, len(stats.PerWeekday))
		for _, d := range stats.PerWeekday {
			rows = append(rows, []string{d.Weekday.String(), fmt.Sprintf("%d", d.Sessions)})
		}
		b.WriteString("\n" + Header("Per Weekday") + "\n")
		b.WriteString(RenderTable([]string{"Day", "Sessions"}, rows))
	}

	return b.String()
}

func utilizationStyled(u float64) string {
	text := fmt.Sprintf("%.0f%%", u*100)
	switch {
	case u >= 0.85:
		return StyleRed.Render(text)
	case u >= 0.6:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}
