package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/sales/domain/models"
)

// ReportRepository runs the read-only aggregate queries behind the reporting
// engine. Implementations must never mutate state.
type ReportRepository interface {
	// SalesBetween returns hydrated sales with start <= date <= end, ascending by date then id.
	SalesBetween(ctx context.Context, start, end time.Time) ([]*models.Sale, error)

	// TopProducts sums item quantities per product, descending, ties by ascending product id.
	TopProducts(ctx context.Context, limit int) ([]models.ProductSales, error)

	// TopClients sums sale totals per client, descending, ties by ascending
	// client id. The default client is NOT filtered here.
	TopClients(ctx context.Context, limit int) ([]models.ClientSpending, error)

	// QuantityLines returns every item of sales with start <= date <= end,
	// ordered by sale date, sale id, item id.
	QuantityLines(ctx context.Context, start, end time.Time) ([]models.QuantityLine, error)

	// SumTotals sums sale totals with from <= date < to.
	SumTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
