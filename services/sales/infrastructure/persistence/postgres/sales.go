package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/ghuser/backoffice/pkg/database"
	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/postgres/db"
)

// Foreign keys whose violation means a referenced row is missing.
const (
	fkSaleClient  = "sales_client_id_fkey"
	fkItemProduct = "sale_items_product_id_fkey"
)

type saleRepo struct {
	q *db.Queries
}

func (r *saleRepo) Create(ctx context.Context, sale *models.Sale) error {
	id, err := r.q.InsertSale(ctx, db.InsertSaleParams{
		ClientID: sale.ClientID,
		SaleDate: sale.Date,
		Total:    sale.Total,
	})
	if err != nil {
		return fmt.Errorf("insert sale: %w", mapReference(err))
	}
	sale.ID = id
	return r.insertItems(ctx, id, sale.Items)
}

func (r *saleRepo) GetByID(ctx context.Context, id int64) (*models.Sale, error) {
	row, err := r.q.GetSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("query sale: %w", err)
	}
	sale := saleFromRow(row.ID, row.ClientID, row.SaleDate, row.Total, row.Name, row.LastName, row.Email)
	if err := hydrateItems(ctx, r.q, []*models.Sale{sale}); err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *saleRepo) GetForUpdate(ctx context.Context, id int64) (*models.Sale, error) {
	row, err := r.q.GetSaleForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}
		return nil, fmt.Errorf("lock sale: %w", err)
	}
	return &models.Sale{
		ID:       row.ID,
		ClientID: row.ClientID,
		Date:     row.SaleDate.UTC(),
		Total:    row.Total,
	}, nil
}

func (r *saleRepo) ReplaceItems(ctx context.Context, saleID int64, items []models.LineItem) error {
	if err := r.q.DeleteSaleItems(ctx, saleID); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return r.insertItems(ctx, saleID, items)
}

func (r *saleRepo) UpdateHeader(ctx context.Context, sale *models.Sale) error {
	n, err := r.q.UpdateSaleHeader(ctx, db.UpdateSaleHeaderParams{
		ID:       sale.ID,
		ClientID: sale.ClientID,
		Total:    sale.Total,
	})
	if err != nil {
		return fmt.Errorf("update sale: %w", mapReference(err))
	}
	if n == 0 {
		return domain.ErrSaleNotFound
	}
	return nil
}

// Delete removes items explicitly rather than relying on the cascade so the
// statement order matches the in-memory store.
func (r *saleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.q.DeleteSaleItems(ctx, id); err != nil {
		return false, fmt.Errorf("delete sale items: %w", err)
	}
	n, err := r.q.DeleteSale(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return n > 0, nil
}

func (r *saleRepo) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	limit := int32(math.MaxInt32)
	if opts.Limit > 0 {
		limit = int32(min(opts.Limit, math.MaxInt32))
	}
	rows, err := r.q.ListSales(ctx, db.ListSalesParams{
		Search: opts.Search,
		Lim:    limit,
		Off:    int32(min(max(opts.Offset, 0), math.MaxInt32)),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query sales: %w", err)
	}
	total, err := r.q.CountSales(ctx, opts.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	sales := make([]*models.Sale, len(rows))
	for i, row := range rows {
		sales[i] = saleFromRow(row.ID, row.ClientID, row.SaleDate, row.Total, row.Name, row.LastName, row.Email)
	}
	if err := hydrateItems(ctx, r.q, sales); err != nil {
		return nil, 0, err
	}
	return sales, int(total), nil
}

// insertItems writes items in order, so item ids ascend with the request order.
func (r *saleRepo) insertItems(ctx context.Context, saleID int64, items []models.LineItem) error {
	for i := range items {
		id, err := r.q.InsertSaleItem(ctx, db.InsertSaleItemParams{
			SaleID:      saleID,
			ProductID:   items[i].ProductID,
			ProductName: items[i].ProductName,
			Quantity:    int32(items[i].Quantity),
			UnitPrice:   items[i].UnitPrice,
			Total:       items[i].Total,
		})
		if err != nil {
			return fmt.Errorf("insert sale item: %w", mapReference(err))
		}
		items[i].ID = id
		items[i].SaleID = saleID
	}
	return nil
}

// hydrateItems loads the items of every sale in one query.
func hydrateItems(ctx context.Context, q *db.Queries, sales []*models.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]int64, len(sales))
	byID := make(map[int64]*models.Sale, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
		byID[s.ID] = s
		s.Items = []models.LineItem{}
	}

	rows, err := q.ListSaleItems(ctx, ids)
	if err != nil {
		return fmt.Errorf("query sale items: %w", err)
	}
	for _, row := range rows {
		sale := byID[row.SaleID]
		sale.Items = append(sale.Items, models.LineItem{
			ID:          row.ID,
			SaleID:      row.SaleID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Product: models.Product{
				ID:          row.ProductID,
				Name:        row.CurrentName,
				Price:       row.CurrentPrice,
				Description: row.Description,
			},
			Quantity:  int(row.Quantity),
			UnitPrice: row.UnitPrice,
			Total:     row.Total,
		})
	}
	return nil
}

// mapReference turns a missing client or product reference into its domain error.
func mapReference(err error) error {
	constraint, ok := database.ForeignKeyViolation(err)
	if !ok {
		return err
	}
	switch constraint {
	case fkSaleClient:
		return domain.ErrClientNotFound
	case fkItemProduct:
		return domain.ErrProductNotFound
	}
	return err
}
