package intelligence

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// extractPayload is the JSON shape the model is asked to produce.
type extractPayload struct {
	Location         string    `json:"location"`
	SessionDuration  *flexInt  `json:"session_duration"`
	WeeklySessions   *flexInt  `json:"num_weekly_sessions"`
	PreferredDays    []string  `json:"preferred_days"`
	PreferredTimes   []string  `json:"preferred_times"`
	UnavailableDates []string  `json:"unavailable_dates"`
}

// flexInt accepts both 60 and "60"; models drift between the two.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// tolerate "60 minutes" style output
		fields := strings.Fields(s)
		if len(fields) > 0 {
			if n, err = strconv.Atoi(fields[0]); err == nil {
				*f = flexInt(n)
				return nil
			}
		}
		return fmt.Errorf("invalid integer %q", s)
	}
	*f = flexInt(n)
	return nil
}

var _ json.Unmarshaler = (*flexInt)(nil)

func validatePayload(p extractPayload) error {
	if p.SessionDuration != nil && *p.SessionDuration <= 0 {
		return fmt.Errorf("session_duration must be positive")
	}
	if p.WeeklySessions != nil && *p.WeeklySessions <= 0 {
		return fmt.Errorf("num_weekly_sessions must be positive")
	}
	if len(p.PreferredDays) > 7 {
		return fmt.Errorf("too many preferred_days")
	}
	return nil
}
