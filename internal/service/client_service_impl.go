package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dferrell/cadence/internal/db"
	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/repository"
)

type clientService struct {
	clients  repository.ClientRepo
	requests repository.RequestRepo
	uow      db.UnitOfWork
}

func NewClientService(clients repository.ClientRepo, requests repository.RequestRepo, uow db.UnitOfWork) ClientService {
	return &clientService{clients: clients, requests: requests, uow: uow}
}

// Create stores the client along with a weekly session request. A
// weeklySessions of zero stores the client without a request.
func (s *clientService) Create(ctx context.Context, c *domain.Client, weeklySessions int) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteClientRepo(tx).Create(ctx, c); err != nil {
			return err
		}
		if weeklySessions <= 0 {
			return nil
		}
		return repository.NewSQLiteRequestRepo(tx).Create(ctx, &domain.SessionRequest{
			ID:        uuid.New().String(),
			ClientID:  c.ID,
			Count:     weeklySessions,
			CreatedAt: now,
		})
	})
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) Resolve(ctx context.Context, ref string) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, ref)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.clients.GetByName(ctx, ref)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Requests(ctx context.Context, clientID string) ([]*domain.SessionRequest, error) {
	return s.requests.ListByClient(ctx, clientID)
}

// Delete removes the client; preferences, blocked dates, and session requests
// go with it via foreign keys.
func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}
