// Package postgres implements the sales repositories and unit of work on
// PostgreSQL through the sqlc queries in package db. Domain events are
// written to the watermill SQL outbox inside the same transaction as the
// rows they describe.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ghuser/backoffice/pkg/database"
	"github.com/ghuser/backoffice/pkg/events"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/postgres/db"
)

// Store implements repositories.UnitOfWork against PostgreSQL.
type Store struct {
	db  *database.Database
	bus *events.EventBus
	q   *db.Queries
}

var _ repositories.UnitOfWork = (*Store)(nil)

// NewStore returns a Store backed by the given pool. bus may be nil, in
// which case transactions publish nothing.
func NewStore(database *database.Database, bus *events.EventBus) *Store {
	return &Store{db: database, bus: bus, q: db.New(database.DB())}
}

func (s *Store) Sales() repositories.SaleRepository       { return &saleRepo{q: s.q} }
func (s *Store) Clients() repositories.ClientRepository   { return &clientRepo{q: s.q} }
func (s *Store) Products() repositories.ProductRepository { return &productRepo{q: s.q} }
func (s *Store) Reports() repositories.ReportRepository   { return &reportRepo{q: s.q} }

// WithinTx runs fn in one READ COMMITTED transaction. Outbox rows written by
// fn are rolled back together with everything else.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.TxStore) error) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return fn(ctx, &txStore{tx: tx, q: s.q.WithTx(tx), bus: s.bus})
	})
}

type txStore struct {
	tx  *sql.Tx
	q   *db.Queries
	bus *events.EventBus
	pub *events.Publisher // created on first publish
}

func (t *txStore) Sales() repositories.SaleRepository       { return &saleRepo{q: t.q} }
func (t *txStore) Clients() repositories.ClientRepository   { return &clientRepo{q: t.q} }
func (t *txStore) Products() repositories.ProductRepository { return &productRepo{q: t.q} }
func (t *txStore) Events() repositories.EventPublisher      { return t }

func (t *txStore) Publish(ctx context.Context, topic string, event any) error {
	if t.bus == nil {
		return nil
	}
	if t.pub == nil {
		pub, err := t.bus.NewTxPublisher(t.tx)
		if err != nil {
			return fmt.Errorf("create publisher: %w", err)
		}
		t.pub = pub
	}
	return t.pub.Publish(ctx, topic, event)
}
