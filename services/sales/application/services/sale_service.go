package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/pkg/telemetry"
	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/events"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
	domainsvcs "github.com/ghuser/backoffice/services/sales/domain/services"
)

// CreateSaleInput is a new sale before pricing. A nil ClientID selects the
// walk-in client; a nil Total means "sum of the line totals".
type CreateSaleInput struct {
	ClientID *int64
	Items    []models.LineRequest
	Total    *decimal.Decimal
}

// UpdateSaleInput carries the optional parts of an update. nil fields are
// left untouched. A non-nil Items replaces the whole item set and must not
// be empty.
type UpdateSaleInput struct {
	ClientID *int64
	Items    []models.LineRequest
	Total    *decimal.Decimal
}

// SaleService is the sale transaction manager. Every write runs in one
// unit-of-work transaction and publishes its event through the outbox of
// that same transaction.
type SaleService struct {
	uow     repositories.UnitOfWork
	clients *ClientService
	metrics *telemetry.SalesMetrics
	log     logger.Logger
	now     func() time.Time
}

// NewSaleService returns a SaleService. metrics may be nil.
func NewSaleService(uow repositories.UnitOfWork, clients *ClientService, metrics *telemetry.SalesMetrics, log logger.Logger) *SaleService {
	return &SaleService{uow: uow, clients: clients, metrics: metrics, log: log, now: time.Now}
}

// Create prices the items at current product prices and persists the sale
// with all of its items atomically. Any missing client or product aborts the
// whole write.
func (s *SaleService) Create(ctx context.Context, in CreateSaleInput) (*models.Sale, error) {
	if err := domainsvcs.ValidateLineRequests(in.Items); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}
	if err := domainsvcs.ValidateTotal(in.Total); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	var sale *models.Sale
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx repositories.TxStore) error {
		client, err := s.resolveClient(ctx, tx, in.ClientID)
		if err != nil {
			return err
		}
		items, err := domainsvcs.PriceLines(ctx, tx.Products(), in.Items)
		if err != nil {
			return err
		}

		sale = models.NewSale(*client, items, domainsvcs.ResolveTotal(items, in.Total), s.clock())
		if err := tx.Sales().Create(ctx, sale); err != nil {
			return fmt.Errorf("save sale: %w", err)
		}
		return s.publish(ctx, tx, events.TopicSaleCreated, sale)
	})
	if err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	s.metrics.SaleCreated(ctx, sale.Total)
	s.log.InfoContext(ctx, "sale created", withOperator(ctx,
		"sale_id", sale.ID,
		"client_id", sale.ClientID,
		"items", len(sale.Items),
		"total", sale.Total.StringFixed(2),
	)...)
	return sale, nil
}

// Update applies in to sale id under a row lock. Supplying Items replaces
// every existing item and recomputes the total unless Total is also given.
// Supplying only Total overwrites the total and leaves the items as they are.
func (s *SaleService) Update(ctx context.Context, id int64, in UpdateSaleInput) (*models.Sale, error) {
	if in.Items != nil {
		if err := domainsvcs.ValidateLineRequests(in.Items); err != nil {
			return nil, fmt.Errorf("update sale %d: %w", id, err)
		}
	}
	if err := domainsvcs.ValidateTotal(in.Total); err != nil {
		return nil, fmt.Errorf("update sale %d: %w", id, err)
	}

	var sale *models.Sale
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx repositories.TxStore) error {
		header, err := tx.Sales().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if in.ClientID != nil {
			client, err := tx.Clients().GetByID(ctx, *in.ClientID)
			if err != nil {
				return err
			}
			header.ClientID = client.ID
		}

		switch {
		case in.Items != nil:
			items, err := domainsvcs.PriceLines(ctx, tx.Products(), in.Items)
			if err != nil {
				return err
			}
			if err := tx.Sales().ReplaceItems(ctx, id, items); err != nil {
				return fmt.Errorf("replace items: %w", err)
			}
			header.Total = domainsvcs.ResolveTotal(items, in.Total)
		case in.Total != nil:
			header.Total = models.RoundMoney(*in.Total)
		}

		if err := tx.Sales().UpdateHeader(ctx, header); err != nil {
			return fmt.Errorf("save sale: %w", err)
		}

		sale, err = tx.Sales().GetByID(ctx, id)
		if err != nil {
			return err
		}
		return s.publish(ctx, tx, events.TopicSaleUpdated, sale)
	})
	if err != nil {
		return nil, fmt.Errorf("update sale %d: %w", id, err)
	}

	s.metrics.SaleUpdated(ctx, sale.Total)
	s.log.InfoContext(ctx, "sale updated", withOperator(ctx,
		"sale_id", sale.ID,
		"client_id", sale.ClientID,
		"items_replaced", in.Items != nil,
		"total", sale.Total.StringFixed(2),
	)...)
	return sale, nil
}

// Delete removes the sale and its items. Returns false when no sale with
// that id existed.
func (s *SaleService) Delete(ctx context.Context, id int64) (bool, error) {
	var existed bool
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx repositories.TxStore) error {
		header, err := tx.Sales().GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrSaleNotFound) {
				return nil
			}
			return err
		}
		if existed, err = tx.Sales().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete sale: %w", err)
		}
		return s.publish(ctx, tx, events.TopicSaleDeleted, header)
	})
	if err != nil {
		return false, fmt.Errorf("delete sale %d: %w", id, err)
	}

	if existed {
		s.metrics.SaleDeleted(ctx)
		s.log.InfoContext(ctx, "sale deleted", withOperator(ctx, "sale_id", id)...)
	}
	return existed, nil
}

// Get returns the hydrated sale or ErrSaleNotFound.
func (s *SaleService) Get(ctx context.Context, id int64) (*models.Sale, error) {
	sale, err := s.uow.Sales().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sale %d: %w", id, err)
	}
	return sale, nil
}

// List returns a newest-first page of sales plus the total match count.
func (s *SaleService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	sales, total, err := s.uow.Sales().List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	return sales, total, nil
}

func (s *SaleService) resolveClient(ctx context.Context, tx repositories.TxStore, id *int64) (*models.Client, error) {
	if id == nil {
		return s.clients.ensureDefault(ctx, tx)
	}
	return tx.Clients().GetByID(ctx, *id)
}

// clock returns the sale timestamp at the storage precision (microseconds).
func (s *SaleService) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *SaleService) publish(ctx context.Context, tx repositories.TxStore, topic string, sale *models.Sale) error {
	evt := events.NewSaleChangedEvent(sale.ID, sale.ClientID, sale.Total, s.clock())
	if operatorID, err := auth.OperatorIDFromCtx(ctx); err == nil {
		evt.OperatorID = &operatorID
	}
	if err := tx.Events().Publish(ctx, topic, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// withOperator appends the acting operator to log attrs. Requests that
// passed the session guard always carry one.
func withOperator(ctx context.Context, attrs ...any) []any {
	if operatorID, err := auth.OperatorIDFromCtx(ctx); err == nil {
		return append(attrs, "operator_id", operatorID.String())
	}
	return attrs
}
