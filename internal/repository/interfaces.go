package repository

import (
	"context"
	"errors"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type RequestRepo interface {
	Create(ctx context.Context, r *domain.SessionRequest) error
	List(ctx context.Context) ([]*domain.SessionRequest, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.SessionRequest, error)
	DeleteByClient(ctx context.Context, clientID string) error
}

// ScheduleSummary is the header row of a stored schedule, without its
// sessions loaded.
type ScheduleSummary struct {
	ID           string
	GeneratedAt  string
	HorizonStart string
	HorizonEnd   string
	Sessions     int
	Unplaced     int
}

type ScheduleRepo interface {
	Save(ctx context.Context, s *app.Schedule) error
	GetByID(ctx context.Context, id string) (*app.Schedule, error)
	GetLatest(ctx context.Context) (*app.Schedule, error)
	List(ctx context.Context, limit int) ([]ScheduleSummary, error)
	Delete(ctx context.Context, id string) error
}
