package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ClientRecord is one raw CSV row, header-mapped and untrimmed of semantics.
// All fields are strings; validation and parsing happen later.
type ClientRecord struct {
	Name             string
	Email            string
	Location         string
	PreferredDays    string
	PreferredTimes   string
	WeeklySessions   string
	SessionDuration  string
	Priority         string
	UnavailableDates string
	Notes            string

	// Line is the 1-based CSV line the record came from, for error messages.
	Line int
}

// Defaults cascade into records that leave a field blank.
type Defaults struct {
	DurationMin *int
	Priority    *int
	Count       *int
}

// columnAliases maps normalized header names to record fields. Headers are
// normalized the same way regardless of source: trimmed, lowercased, spaces
// to underscores.
var columnAliases = map[string]string{
	"name":                    "name",
	"client":                  "name",
	"client_name":             "name",
	"email":                   "email",
	"location":                "location",
	"preferred_days":          "preferred_days",
	"days":                    "preferred_days",
	"preferred_times":         "preferred_times",
	"times":                   "preferred_times",
	"weekly_sessions":         "weekly_sessions",
	"sessions_per_week":       "weekly_sessions",
	"session_duration":        "session_duration",
	"session_duration_(mins)": "session_duration",
	"duration":                "session_duration",
	"priority":                "priority",
	"unavailable_dates":       "unavailable_dates",
	"blocked_dates":           "unavailable_dates",
	"notes":                   "notes",
	"responses":               "notes",
}

// LoadRecords reads a client CSV file and maps rows by header name.
func LoadRecords(path string) ([]ClientRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRecords(f)
}

// ReadRecords parses client records from CSV data. The first row must be a
// header; unknown columns are ignored.
func ReadRecords(r io.Reader) ([]ClientRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	fields := make([]string, len(header))
	known := false
	for i, h := range header {
		fields[i] = columnAliases[normalizeHeader(h)]
		if fields[i] != "" {
			known = true
		}
	}
	if !known {
		return nil, fmt.Errorf("no recognized columns in header %v", header)
	}

	var records []ClientRecord
	line := 1
	for {
		row, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		rec := ClientRecord{Line: line}
		for i, val := range row {
			if i >= len(fields) {
				break
			}
			setField(&rec, fields[i], strings.TrimSpace(val))
		}
		if rec == (ClientRecord{Line: line}) {
			continue // blank row
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

func setField(rec *ClientRecord, field, val string) {
	switch field {
	case "name":
		rec.Name = val
	case "email":
		rec.Email = val
	case "location":
		rec.Location = val
	case "preferred_days":
		rec.PreferredDays = val
	case "preferred_times":
		rec.PreferredTimes = val
	case "weekly_sessions":
		rec.WeeklySessions = val
	case "session_duration":
		rec.SessionDuration = val
	case "priority":
		rec.Priority = val
	case "unavailable_dates":
		rec.UnavailableDates = val
	case "notes":
		rec.Notes = val
	}
}
