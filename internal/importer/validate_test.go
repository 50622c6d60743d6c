package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(line int) ClientRecord {
	return ClientRecord{
		Name:            "Ana Silva",
		Email:           "ana@example.com",
		Location:        "Remote",
		PreferredDays:   "Monday, Wednesday",
		PreferredTimes:  "6:00 to 9:00",
		WeeklySessions:  "2",
		SessionDuration: "60",
		Priority:        "3",
		Line:            line,
	}
}

func TestValidateRecords_Valid(t *testing.T) {
	errs := ValidateRecords([]ClientRecord{validRecord(2)})
	assert.Empty(t, errs)
}

func TestValidateRecords_Empty(t *testing.T) {
	errs := ValidateRecords(nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no client records")
}

func TestValidateRecords_CollectsAllErrors(t *testing.T) {
	rec := ClientRecord{
		Email:           "not-an-email",
		Location:        "moon",
		WeeklySessions:  "two",
		SessionDuration: "-30",
		Priority:        "high",
		PreferredDays:   "Funday",
		PreferredTimes:  "sometime later",
		Line:            2,
	}
	errs := ValidateRecords([]ClientRecord{rec})

	joined := make([]string, len(errs))
	for i, e := range errs {
		joined[i] = e.Error()
	}
	all := strings.Join(joined, "\n")

	assert.Contains(t, all, "name is required")
	assert.Contains(t, all, "invalid email")
	assert.Contains(t, all, "invalid location")
	assert.Contains(t, all, `weekly_sessions: invalid integer "two"`)
	assert.Contains(t, all, "session_duration must be positive")
	assert.Contains(t, all, `priority: invalid integer "high"`)
	assert.Contains(t, all, `invalid weekday "Funday"`)
	assert.Contains(t, all, "preferred_times")
	assert.GreaterOrEqual(t, len(errs), 7, "every problem reported in one pass")
}

func TestValidateRecords_DuplicateName(t *testing.T) {
	a := validRecord(2)
	b := validRecord(3)
	b.Name = "ana silva" // case-insensitive match
	errs := ValidateRecords([]ClientRecord{a, b})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate client")
	assert.Contains(t, errs[0].Error(), "line 2")
}

func TestValidateRecords_BlankOptionalFieldsOK(t *testing.T) {
	rec := ClientRecord{Name: "Bo", Line: 2}
	assert.Empty(t, ValidateRecords([]ClientRecord{rec}))
}
