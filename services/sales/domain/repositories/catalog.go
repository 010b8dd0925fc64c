package repositories

import (
	"context"

	"github.com/ghuser/backoffice/services/sales/domain/models"
)

// ClientRepository is the slice of the client store the sales core consumes.
type ClientRepository interface {
	// GetByID returns ErrClientNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.Client, error)

	// InsertIfAbsent inserts client with its explicit ID unless a row with
	// that ID already exists. Reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, client models.Client) (bool, error)

	// Delete reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)

	Count(ctx context.Context) (int64, error)
}

// ProductRepository is the slice of the product store the sales core consumes.
type ProductRepository interface {
	// GetByID returns ErrProductNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.Product, error)

	Count(ctx context.Context) (int64, error)
}
