package services

import (
	"context"
	"fmt"

	"github.com/ghuser/backoffice/pkg/logger"
	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
)

// ClientService owns the reserved walk-in client: lazy creation and the
// delete guard. Other client CRUD lives with the client store.
type ClientService struct {
	uow      repositories.UnitOfWork
	defaults models.Client
	log      logger.Logger
}

// NewClientService returns a ClientService that creates the walk-in client
// from defaults (its ID is forced to models.DefaultClientID).
func NewClientService(uow repositories.UnitOfWork, defaults models.Client, log logger.Logger) *ClientService {
	defaults.ID = models.DefaultClientID
	return &ClientService{uow: uow, defaults: defaults, log: log}
}

// FindOrCreateDefault returns the walk-in client, inserting it first when
// missing. Safe under concurrent first use: the insert is a no-op when the
// row already exists.
func (s *ClientService) FindOrCreateDefault(ctx context.Context) (*models.Client, error) {
	client, err := s.ensureDefault(ctx, s.uow)
	if err != nil {
		return nil, fmt.Errorf("default client: %w", err)
	}
	return client, nil
}

// ensureDefault runs against store, so the sale write path can resolve the
// default client inside its own transaction.
func (s *ClientService) ensureDefault(ctx context.Context, store repositories.Store) (*models.Client, error) {
	inserted, err := store.Clients().InsertIfAbsent(ctx, s.defaults)
	if err != nil {
		return nil, fmt.Errorf("insert default client: %w", err)
	}
	if inserted {
		s.log.InfoContext(ctx, "default client created", "client_id", s.defaults.ID)
	}
	return store.Clients().GetByID(ctx, models.DefaultClientID)
}

// Delete removes a client. The walk-in client is rejected with
// ErrDefaultClientProtected; an unknown id yields ErrClientNotFound.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if id == models.DefaultClientID {
		return domain.ErrDefaultClientProtected
	}
	existed, err := s.uow.Clients().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	if !existed {
		return fmt.Errorf("delete client %d: %w", id, domain.ErrClientNotFound)
	}
	s.log.InfoContext(ctx, "client deleted", "client_id", id)
	return nil
}
