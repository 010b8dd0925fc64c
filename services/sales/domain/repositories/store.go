package repositories

import "context"

// Store groups the repositories of the sales bounded context over one
// connection scope (the pool, or a single transaction).
type Store interface {
	Sales() SaleRepository
	Clients() ClientRepository
	Products() ProductRepository
}

// EventPublisher publishes a domain event as part of the enclosing
// transaction: it becomes visible to subscribers only if the transaction commits.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// TxStore is a Store bound to a single transaction.
type TxStore interface {
	Store
	Events() EventPublisher
}

// UnitOfWork is the entry point the application layer uses for persistence.
// Reads outside a transaction go through the embedded Store and Reports;
// writes go through WithinTx.
type UnitOfWork interface {
	Store
	Reports() ReportRepository

	// WithinTx runs fn in one transaction. fn returning an error, or
	// panicking, rolls back every change fn made, including published events.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx TxStore) error) error
}
