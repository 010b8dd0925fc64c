package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
	domainsvcs "github.com/ghuser/backoffice/services/sales/domain/services"
)

// ReportCache is the read-through cache in front of the heavier reports.
// Get returns redis.Nil on a miss. *cache.ReportCache satisfies it.
type ReportCache interface {
	Get(ctx context.Context, name string, dst any) error
	Set(ctx context.Context, name string, v any) error
}

// ReportStore is the read side the reporting engine consumes.
type ReportStore interface {
	Reports() repositories.ReportRepository
	Clients() repositories.ClientRepository
	Products() repositories.ProductRepository
}

// ReportService is the reporting engine. It never writes sales.
type ReportService struct {
	store ReportStore
	cache ReportCache // nil disables caching
	loc   *time.Location
	log   logger.Logger
	now   func() time.Time
}

// NewReportService returns a ReportService computing calendar days in loc
// (UTC when nil). reportCache may be nil.
func NewReportService(store ReportStore, reportCache ReportCache, loc *time.Location, log logger.Logger) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{store: store, cache: reportCache, loc: loc, log: log, now: time.Now}
}

// Location is the zone calendar days are computed in.
func (s *ReportService) Location() *time.Location {
	return s.loc
}

// SalesByDateRange returns hydrated sales with start <= date <= end, oldest first.
func (s *ReportService) SalesByDateRange(ctx context.Context, start, end time.Time) ([]*models.Sale, error) {
	if err := domainsvcs.ValidateRange(start, end); err != nil {
		return nil, fmt.Errorf("sales by date: %w", err)
	}
	sales, err := s.store.Reports().SalesBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by date: %w", err)
	}
	return sales, nil
}

// TopSellingProducts ranks products by total quantity sold across all sales.
func (s *ReportService) TopSellingProducts(ctx context.Context, limit int) ([]models.ProductSales, error) {
	if err := domainsvcs.ValidateLimit(limit); err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return cached(ctx, s, fmt.Sprintf("top-products:%d", limit), func(ctx context.Context) ([]models.ProductSales, error) {
		rows, err := s.store.Reports().TopProducts(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("top products: %w", err)
		}
		return rows, nil
	})
}

// TopClients ranks clients by total spent. The walk-in client is never
// part of the result; one extra candidate is fetched so excluding it still
// leaves limit rows.
func (s *ReportService) TopClients(ctx context.Context, limit int) ([]models.ClientSpending, error) {
	if err := domainsvcs.ValidateLimit(limit); err != nil {
		return nil, fmt.Errorf("top clients: %w", err)
	}
	return cached(ctx, s, fmt.Sprintf("top-clients:%d", limit), func(ctx context.Context) ([]models.ClientSpending, error) {
		rows, err := s.store.Reports().TopClients(ctx, limit+1)
		if err != nil {
			return nil, fmt.Errorf("top clients: %w", err)
		}
		return domainsvcs.ExcludeDefaultClient(rows, models.DefaultClientID, limit), nil
	})
}

// ProductSalesByDate returns one bucket per calendar day of the range that
// has sales, with the day's total quantity and best-selling product.
func (s *ReportService) ProductSalesByDate(ctx context.Context, start, end time.Time) ([]models.DailyProductSales, error) {
	if err := domainsvcs.ValidateRange(start, end); err != nil {
		return nil, fmt.Errorf("product sales by date: %w", err)
	}
	lines, err := s.store.Reports().QuantityLines(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("product sales by date: %w", err)
	}
	return domainsvcs.BucketByDay(lines, s.loc), nil
}

// DashboardStats returns the back-office summary, from cache when possible.
func (s *ReportService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return cached(ctx, s, s.dashboardKey(), s.computeDashboard)
}

// RefreshDashboard recomputes the summary and overwrites the cached copy.
func (s *ReportService) RefreshDashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.computeDashboard(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, s.dashboardKey(), stats); err != nil {
			return nil, fmt.Errorf("dashboard: cache: %w", err)
		}
	}
	return stats, nil
}

// computeDashboard runs the six sub-queries concurrently. They share no
// snapshot; the first failure cancels the rest.
func (s *ReportService) computeDashboard(ctx context.Context) (*models.DashboardStats, error) {
	w := domainsvcs.WindowsAt(s.now(), s.loc)
	stats := &models.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	sum := func(dst *decimal.Decimal, r models.DateRange) func() error {
		return func() error {
			v, err := s.store.Reports().SumTotals(gctx, r.Start, r.End)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		}
	}
	g.Go(sum(&stats.TodaySales, w.Today))
	g.Go(sum(&stats.YesterdaySales, w.Yesterday))
	g.Go(sum(&stats.CurrentMonthSales, w.MonthToDate))
	g.Go(sum(&stats.LastMonthSales, w.PreviousMonth))
	g.Go(func() (err error) {
		stats.TotalClients, err = s.store.Clients().Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalProducts, err = s.store.Products().Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return stats, nil
}

// dashboardKey embeds today's date so a cached summary never crosses midnight.
func (s *ReportService) dashboardKey() string {
	return "dashboard:" + s.now().In(s.loc).Format(time.DateOnly)
}

// cached serves key from the report cache or loads and stores it. Cache
// failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *ReportService, key string, load func(context.Context) (T, error)) (T, error) {
	if s.cache != nil {
		var hit T
		err := s.cache.Get(ctx, key, &hit)
		if err == nil {
			return hit, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "report cache read failed", "key", key, "error", err)
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, v); err != nil {
			s.log.WarnContext(ctx, "report cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}
