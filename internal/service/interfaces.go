package service

import (
	"context"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/repository"
)

type PlanService interface {
	Plan(ctx context.Context, req app.PlanRequest) (*app.PlanResponse, error)
}

type ImportService interface {
	ImportClients(ctx context.Context, filePath string) (*app.ImportResult, error)
}

type ClientService interface {
	Create(ctx context.Context, c *domain.Client, weeklySessions int) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// Resolve finds a client by ID first, then by case-insensitive name.
	Resolve(ctx context.Context, ref string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Requests(ctx context.Context, clientID string) ([]*domain.SessionRequest, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	Latest(ctx context.Context) (*app.Schedule, error)
	GetByID(ctx context.Context, id string) (*app.Schedule, error)
	List(ctx context.Context, limit int) ([]repository.ScheduleSummary, error)
	// Stats loads a stored schedule and computes its aggregates. An empty id
	// means the latest schedule.
	Stats(ctx context.Context, id string) (*app.Schedule, app.ScheduleStats, error)
	Delete(ctx context.Context, id string) error
}
