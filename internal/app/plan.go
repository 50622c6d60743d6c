package app

import (
	"time"

	"github.com/dferrell/cadence/internal/domain"
)

// PlanRequest asks for a schedule over a horizon. Zero-valued fields fall
// back to configured defaults in the service layer.
type PlanRequest struct {
	Horizon        domain.Horizon
	GranularityMin int
	// ClientScope restricts the run to the given client IDs when non-empty.
	ClientScope []string
	// DryRun computes the schedule without persisting it.
	DryRun bool
	Now    *time.Time
}

// PlanResponse carries the schedule of a completed run plus derived stats.
type PlanResponse struct {
	Schedule *Schedule
	Stats    ScheduleStats
	// BusyCount is the number of busy intervals consumed from the calendar
	// source, surfaced for diagnostics.
	BusyCount int
}

type PlanErrorCode string

const (
	PlanErrConfig    PlanErrorCode = "CONFIG"
	PlanErrNoClients PlanErrorCode = "NO_CLIENTS"
	PlanErrCalendar  PlanErrorCode = "CALENDAR_SOURCE"
	PlanErrInternal  PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}
