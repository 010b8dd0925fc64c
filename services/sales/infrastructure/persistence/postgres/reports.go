package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/postgres/db"
)

type reportRepo struct {
	q *db.Queries
}

func (r *reportRepo) SalesBetween(ctx context.Context, start, end time.Time) ([]*models.Sale, error) {
	rows, err := r.q.SalesBetween(ctx, db.SalesBetweenParams{StartAt: start, EndAt: end})
	if err != nil {
		return nil, fmt.Errorf("query sales between: %w", err)
	}
	sales := make([]*models.Sale, len(rows))
	for i, row := range rows {
		sales[i] = saleFromRow(row.ID, row.ClientID, row.SaleDate, row.Total, row.Name, row.LastName, row.Email)
	}
	if err := hydrateItems(ctx, r.q, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *reportRepo) TopProducts(ctx context.Context, limit int) ([]models.ProductSales, error) {
	rows, err := r.q.TopProducts(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("query top products: %w", err)
	}
	out := make([]models.ProductSales, len(rows))
	for i, row := range rows {
		out[i] = models.ProductSales{ProductID: row.ProductID, ProductName: row.Name, TotalSold: row.TotalSold}
	}
	return out, nil
}

func (r *reportRepo) TopClients(ctx context.Context, limit int) ([]models.ClientSpending, error) {
	rows, err := r.q.TopClients(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("query top clients: %w", err)
	}
	out := make([]models.ClientSpending, len(rows))
	for i, row := range rows {
		c := models.Client{Name: row.Name, LastName: row.LastName}
		out[i] = models.ClientSpending{ClientID: row.ID, ClientName: c.FullName(), TotalSpent: row.TotalSpent}
	}
	return out, nil
}

func (r *reportRepo) QuantityLines(ctx context.Context, start, end time.Time) ([]models.QuantityLine, error) {
	rows, err := r.q.QuantityLines(ctx, db.QuantityLinesParams{StartAt: start, EndAt: end})
	if err != nil {
		return nil, fmt.Errorf("query quantity lines: %w", err)
	}
	out := make([]models.QuantityLine, len(rows))
	for i, row := range rows {
		out[i] = models.QuantityLine{
			SaleDate:    row.SaleDate.UTC(),
			SaleID:      row.SaleID,
			ProductID:   row.ProductID,
			ProductName: row.Name,
			Quantity:    int64(row.Quantity),
		}
	}
	return out, nil
}

func (r *reportRepo) SumTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	sum, err := r.q.SumTotals(ctx, db.SumTotalsParams{FromAt: from, ToAt: to})
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum totals: %w", err)
	}
	return sum, nil
}
