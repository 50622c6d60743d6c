package service

import (
	"context"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/repository"
	"github.com/dferrell/cadence/internal/scheduler"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
}

func NewScheduleService(schedules repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedules: schedules}
}

func (s *scheduleService) Latest(ctx context.Context) (*app.Schedule, error) {
	return s.schedules.GetLatest(ctx)
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*app.Schedule, error) {
	return s.schedules.GetByID(ctx, id)
}

func (s *scheduleService) List(ctx context.Context, limit int) ([]repository.ScheduleSummary, error) {
	return s.schedules.List(ctx, limit)
}

func (s *scheduleService) Stats(ctx context.Context, id string) (*app.Schedule, app.ScheduleStats, error) {
	var (
		schedule *app.Schedule
		err      error
	)
	if id == "" {
		schedule, err = s.schedules.GetLatest(ctx)
	} else {
		schedule, err = s.schedules.GetByID(ctx, id)
	}
	if err != nil {
		return nil, app.ScheduleStats{}, err
	}
	return schedule, scheduler.Summarize(schedule), nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedules.Delete(ctx, id)
}
