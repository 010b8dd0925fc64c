// Package memory provides an in-memory implementation of the sales
// repositories and unit of work. Transactions are serialised and applied
// copy-on-commit, so a failing transaction leaves no trace. It backs the
// application-layer tests and local runs without PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
)

type state struct {
	products map[int64]models.Product
	clients  map[int64]models.Client
	sales    map[int64]models.Sale     // headers only; Items is always nil
	items    map[int64]models.LineItem // Product is never populated

	nextProductID int64
	nextClientID  int64
	nextSaleID    int64
	nextItemID    int64
}

func newState() *state {
	return &state{
		products:      map[int64]models.Product{},
		clients:       map[int64]models.Client{},
		sales:         map[int64]models.Sale{},
		items:         map[int64]models.LineItem{},
		nextProductID: 1,
		// the reserved walk-in id is never handed out by the sequence
		nextClientID: models.DefaultClientID + 1,
		nextSaleID:   1,
		nextItemID:   1,
	}
}

func (s *state) clone() *state {
	c := *s
	c.products = make(map[int64]models.Product, len(s.products))
	for k, v := range s.products {
		c.products[k] = v
	}
	c.clients = make(map[int64]models.Client, len(s.clients))
	for k, v := range s.clients {
		c.clients[k] = v
	}
	c.sales = make(map[int64]models.Sale, len(s.sales))
	for k, v := range s.sales {
		c.sales[k] = v
	}
	c.items = make(map[int64]models.LineItem, len(s.items))
	for k, v := range s.items {
		c.items[k] = v
	}
	return &c
}

// access runs read and write callbacks against a state. The root store
// guards the committed state with a RWMutex; a transaction works on its
// private clone without locking.
type access interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

// PublishedEvent is an event committed through a transaction.
type PublishedEvent struct {
	Topic string
	Event any
}

// Store is the in-memory UnitOfWork.
type Store struct {
	txMu sync.Mutex // serialises transactions

	mu     sync.RWMutex
	state  *state
	events []PublishedEvent
}

var _ repositories.UnitOfWork = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) read(fn func(*state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// write also takes txMu so a direct write cannot be lost under a
// concurrent commit of an older clone.
func (s *Store) write(fn func(*state) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

func (s *Store) Sales() repositories.SaleRepository       { return &saleRepo{db: s} }
func (s *Store) Clients() repositories.ClientRepository   { return &clientRepo{db: s} }
func (s *Store) Products() repositories.ProductRepository { return &productRepo{db: s} }
func (s *Store) Reports() repositories.ReportRepository   { return &reportRepo{db: s} }

// WithinTx runs fn against a private copy of the state and swaps it in only
// when fn returns nil. Events published by fn are recorded on commit.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repositories.TxStore) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	work := s.state.clone()
	s.mu.RUnlock()

	tx := &txStore{state: work}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = work
	s.events = append(s.events, tx.events...)
	s.mu.Unlock()
	return nil
}

// PublishedEvents returns the events committed so far, oldest first.
func (s *Store) PublishedEvents() []PublishedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PublishedEvent(nil), s.events...)
}

// AddProduct inserts p, assigning an id when p.ID is zero.
func (s *Store) AddProduct(p models.Product) models.Product {
	_ = s.write(func(st *state) error {
		if p.ID == 0 {
			p.ID = st.nextProductID
		}
		if p.ID >= st.nextProductID {
			st.nextProductID = p.ID + 1
		}
		st.products[p.ID] = p
		return nil
	})
	return p
}

// AddClient inserts c, assigning an id when c.ID is zero.
func (s *Store) AddClient(c models.Client) models.Client {
	_ = s.write(func(st *state) error {
		if c.ID == 0 {
			c.ID = st.nextClientID
		}
		if c.ID >= st.nextClientID {
			st.nextClientID = c.ID + 1
		}
		st.clients[c.ID] = c
		return nil
	})
	return c
}

// UpdateProduct overwrites a catalog entry, as the product store would.
func (s *Store) UpdateProduct(p models.Product) {
	_ = s.write(func(st *state) error {
		st.products[p.ID] = p
		return nil
	})
}

// SaleCount returns the number of sale headers.
func (s *Store) SaleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.sales)
}

// ItemCount returns the number of line items across all sales.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.items)
}

type txStore struct {
	state  *state
	events []PublishedEvent
}

func (t *txStore) read(fn func(*state) error) error  { return fn(t.state) }
func (t *txStore) write(fn func(*state) error) error { return fn(t.state) }

func (t *txStore) Sales() repositories.SaleRepository       { return &saleRepo{db: t} }
func (t *txStore) Clients() repositories.ClientRepository   { return &clientRepo{db: t} }
func (t *txStore) Products() repositories.ProductRepository { return &productRepo{db: t} }
func (t *txStore) Events() repositories.EventPublisher      { return t }

func (t *txStore) Publish(_ context.Context, topic string, event any) error {
	t.events = append(t.events, PublishedEvent{Topic: topic, Event: event})
	return nil
}
