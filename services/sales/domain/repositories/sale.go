package repositories

import (
	"context"

	"github.com/ghuser/backoffice/services/sales/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int    // Maximum number of records to return
	Offset int    // Number of records to skip
	Search string // Optional free-text filter; empty matches everything
}

// SaleRepository is the persistence interface for the Sale aggregate.
// The domain layer owns this interface; infrastructure implements it.
type SaleRepository interface {
	// Create inserts the sale header and all of its items, assigning IDs in place.
	Create(ctx context.Context, sale *models.Sale) error

	// GetByID returns the sale hydrated with client and item products.
	// Returns ErrSaleNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.Sale, error)

	// GetForUpdate returns the sale header (no items) and locks it until the
	// surrounding transaction ends. Returns ErrSaleNotFound if absent.
	GetForUpdate(ctx context.Context, id int64) (*models.Sale, error)

	// ReplaceItems deletes every item of the sale, then inserts items.
	ReplaceItems(ctx context.Context, saleID int64, items []models.LineItem) error

	// UpdateHeader persists ClientID and Total.
	UpdateHeader(ctx context.Context, sale *models.Sale) error

	// Delete removes the sale's items and header. Reports whether a sale row existed.
	Delete(ctx context.Context, id int64) (bool, error)

	// List returns a newest-first page of hydrated sales and the total match count.
	List(ctx context.Context, opts QueryOpts) ([]*models.Sale, int, error)
}
