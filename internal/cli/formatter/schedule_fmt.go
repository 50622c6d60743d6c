package formatter

import (
	"fmt"
	"strings"

	"github.com/dferrell/cadence/internal/app"
)

// RenderSchedule renders a schedule as a day-grouped session listing followed
// by the unplaced requests, if any.
func RenderSchedule(s *app.Schedule) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Schedule %s to %s",
		s.HorizonStart.Format("Jan 2"), s.HorizonEnd.Format("Jan 2, 2006"))))
	b.WriteString("\n")

	if len(s.Sessions) == 0 {
		b.WriteString(Dim("No sessions scheduled.") + "\n")
	}

	var lastDay string
	for _, sess := range s.Sessions {
		day := sess.Start.Format("Monday, Jan 2")
		if day != lastDay {
			b.WriteString("\n" + StyleBlue.Render(day) + "\n")
			lastDay = day
		}
		b.WriteString(fmt.Sprintf("  %s-%s  %s %s\n",
			sess.Start.Format("15:04"),
			sess.End.Format("15:04"),
			StyleFg.Render(sess.ClientName),
			Dim(fmt.Sprintf("(%s)", FormatMinutes(sess.DurationMin())))))
	}

	if len(s.Unplaced) > 0 {
		b.WriteString("\n" + Header("Unplaced") + "\n")
		for _, u := range s.Unplaced {
			b.WriteString(fmt.Sprintf("  %s week %d  %s  %s\n",
				StyleFg.Render(u.ClientName),
				u.WeekIndex+1,
				ReasonPill(string(u.Reason)),
				Dim(u.Message)))
		}
	}

	return b.String()
}

// RenderScheduleSummaryLine is a one-line digest for lists and plan output.
func RenderScheduleSummaryLine(s *app.Schedule) string {
	return fmt.Sprintf("%s sessions scheduled, %s unplaced",
		Bold(fmt.Sprintf("%d", len(s.Sessions))),
		Bold(fmt.Sprintf("%d", len(s.Unplaced))))
}
