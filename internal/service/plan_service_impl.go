package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/availability"
	"github.com/dferrell/cadence/internal/calendar"
	"github.com/dferrell/cadence/internal/config"
	"github.com/dferrell/cadence/internal/db"
	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/repository"
	"github.com/dferrell/cadence/internal/scheduler"
)

type planService struct {
	cfg      *config.Config
	clients  repository.ClientRepo
	requests repository.RequestRepo
	source   calendar.Source
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewPlanService wires a planning pipeline: configuration and client data in,
// a persisted schedule out. A nil source plans against working hours alone.
func NewPlanService(
	cfg *config.Config,
	clients repository.ClientRepo,
	requests repository.RequestRepo,
	source calendar.Source,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		cfg:      cfg,
		clients:  clients,
		requests: requests,
		source:   source,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dry_run": req.DryRun}
	defer func() {
		if resp != nil {
			fields["sessions"] = len(resp.Schedule.Sessions)
			fields["unplaced"] = len(resp.Schedule.Unplaced)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	workingHours, err := s.cfg.WorkingHoursModel()
	if err != nil {
		return nil, planErr(app.PlanErrConfig, "invalid working hours", err)
	}

	horizon := req.Horizon
	if horizon.Start.IsZero() {
		horizon = s.cfg.Horizon(now)
	}
	if err := horizon.Validate(); err != nil {
		return nil, planErr(app.PlanErrConfig, "invalid horizon", err)
	}

	granularity := req.GranularityMin
	if granularity == 0 {
		granularity = s.cfg.GranularityMin
	}

	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, planErr(app.PlanErrInternal, "loading clients", err)
	}
	clients = filterClientsByScope(clients, req.ClientScope)
	if len(clients) == 0 {
		return nil, planErr(app.PlanErrNoClients, "no clients to schedule", nil)
	}

	requests, err := s.loadRequests(ctx, clients, req.ClientScope)
	if err != nil {
		return nil, planErr(app.PlanErrInternal, "loading session requests", err)
	}

	var busy []availability.Interval
	if s.source != nil {
		busy, err = s.source.BusyIntervals(ctx, horizon)
		if err != nil {
			return nil, planErr(app.PlanErrCalendar, "fetching busy intervals", err)
		}
	}

	schedule, err := scheduler.BuildSchedule(scheduler.BuildInput{
		WorkingHours:   workingHours,
		Busy:           busy,
		Clients:        clients,
		Requests:       requests,
		Horizon:        horizon,
		GranularityMin: granularity,
		Now:            now,
	})
	if err != nil {
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, planErr(app.PlanErrConfig, cfgErr.Message, err)
		}
		return nil, planErr(app.PlanErrInternal, "building schedule", err)
	}
	schedule.ID = uuid.New().String()

	if !req.DryRun {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteScheduleRepo(tx).Save(ctx, schedule)
		})
		if err != nil {
			return nil, planErr(app.PlanErrInternal, "persisting schedule", err)
		}
	}

	return &app.PlanResponse{
		Schedule:  schedule,
		Stats:     scheduler.Summarize(schedule),
		BusyCount: len(busy),
	}, nil
}

// loadRequests gathers the session requests for the scoped clients. An
// unscoped plan loads everything in one query.
func (s *planService) loadRequests(ctx context.Context, clients []*domain.Client, scope []string) ([]*domain.SessionRequest, error) {
	if len(scope) == 0 {
		return s.requests.List(ctx)
	}
	var requests []*domain.SessionRequest
	for _, c := range clients {
		rs, err := s.requests.ListByClient(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("requests for client %s: %w", c.ID, err)
		}
		requests = append(requests, rs...)
	}
	return requests, nil
}

func filterClientsByScope(clients []*domain.Client, scope []string) []*domain.Client {
	if len(scope) == 0 {
		return clients
	}
	scopeSet := make(map[string]bool, len(scope))
	for _, id := range scope {
		scopeSet[id] = true
	}
	var filtered []*domain.Client
	for _, c := range clients {
		if scopeSet[c.ID] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func planErr(code app.PlanErrorCode, msg string, err error) *app.PlanError {
	return &app.PlanError{Code: code, Message: msg, Err: err}
}
