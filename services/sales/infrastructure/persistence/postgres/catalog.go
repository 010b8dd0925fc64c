package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/pkg/database"
	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/postgres/db"
)

type clientRepo struct {
	q *db.Queries
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("query client: %w", err)
	}
	return &models.Client{ID: row.ID, Name: row.Name, LastName: row.LastName, Email: row.Email}, nil
}

func (r *clientRepo) InsertIfAbsent(ctx context.Context, client models.Client) (bool, error) {
	n, err := r.q.InsertClientIfAbsent(ctx, db.InsertClientIfAbsentParams{
		ID:       client.ID,
		Name:     client.Name,
		LastName: client.LastName,
		Email:    client.Email,
	})
	if err != nil {
		return false, fmt.Errorf("insert client: %w", err)
	}
	return n > 0, nil
}

func (r *clientRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.q.DeleteClient(ctx, id)
	if err != nil {
		if _, ok := database.ForeignKeyViolation(err); ok {
			return true, domain.ErrClientInUse
		}
		return false, fmt.Errorf("delete client: %w", err)
	}
	return n > 0, nil
}

func (r *clientRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.q.CountClients(ctx)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

type productRepo struct {
	q *db.Queries
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row, err := r.q.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &models.Product{ID: row.ID, Name: row.Name, Price: row.Price, Description: row.Description}, nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.q.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// saleFromRow maps a sale header joined with its client.
func saleFromRow(id, clientID int64, date time.Time, total decimal.Decimal, name, lastName, email string) *models.Sale {
	return &models.Sale{
		ID:       id,
		Date:     date.UTC(),
		ClientID: clientID,
		Client:   models.Client{ID: clientID, Name: name, LastName: lastName, Email: email},
		Total:    total,
	}
}
