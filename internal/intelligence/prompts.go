package intelligence

import (
	"fmt"
	"strings"
	"time"
)

const extractSystemPrompt = `You extract structured scheduling preferences for a weekly session booking system. You always answer with a single JSON object and nothing else.`

const extractPromptTemplate = `Parse the client's scheduling information below into structured JSON.

<client_message>%s</client_message>
<today>%s (%s)</today>
<location>%s</location>
<preferred_days>%s</preferred_days>
<preferred_times>%s</preferred_times>
<weekly_sessions>%s</weekly_sessions>
<session_duration>%s</session_duration>

Rules for each field:
- location: "in_person" or "remote".
- session_duration: integer minutes.
- num_weekly_sessions: integer.
- preferred_days: list of day names (Monday, Tuesday, ...).
- preferred_times:
  - If the client says anytime or flexible, use an empty list.
  - Map named times of day to these ranges:
    - Early Morning: 6:00 to 9:00
    - Morning: 9:00 to 12:00
    - Afternoon: 12:00 to 15:00
    - Evening: 15:00 to 18:00
    - Night: 18:00 to 21:00
  - Format specific times as 24-hour ranges like "6:00 to 9:00".
- unavailable_dates: any dates the client cannot attend, as YYYY-MM-DD.

Respond with exactly this JSON structure:
{
  "location": "in_person|remote",
  "session_duration": 60,
  "num_weekly_sessions": 2,
  "preferred_days": ["Monday"],
  "preferred_times": ["6:00 to 9:00"],
  "unavailable_dates": ["2025-03-04"]
}

Use null or an empty list for anything the input does not state.`

func buildExtractPrompt(in ExtractionInput) string {
	today := in.Today
	if today.IsZero() {
		today = time.Now()
	}
	return fmt.Sprintf(extractPromptTemplate,
		strings.TrimSpace(in.Record.Notes),
		today.Format("2006-01-02"),
		today.Weekday().String(),
		in.Record.Location,
		in.Record.PreferredDays,
		in.Record.PreferredTimes,
		in.Record.WeeklySessions,
		in.Record.SessionDuration,
	)
}
