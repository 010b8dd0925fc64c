package telemetry

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const salesMeterName = "github.com/ghuser/backoffice/services/sales"

// SalesMetrics records write-path counters for the sales ledger.
// A nil *SalesMetrics is valid and records nothing.
type SalesMetrics struct {
	writes metric.Int64Counter
	totals metric.Float64Histogram
}

// NewSalesMetrics registers the sales instruments on mp, or on the global
// meter provider when mp is nil. Call it after Setup so the Prometheus
// reader sees them.
func NewSalesMetrics(mp metric.MeterProvider) (*SalesMetrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(salesMeterName)

	writes, err := meter.Int64Counter("sales.writes",
		metric.WithDescription("Committed sale writes by operation"),
		metric.WithUnit("{sale}"),
	)
	if err != nil {
		return nil, fmt.Errorf("sales.writes counter: %w", err)
	}

	totals, err := meter.Float64Histogram("sales.total",
		metric.WithDescription("Totals of created and updated sales"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000),
	)
	if err != nil {
		return nil, fmt.Errorf("sales.total histogram: %w", err)
	}

	return &SalesMetrics{writes: writes, totals: totals}, nil
}

// SaleCreated records one committed create and its total.
func (m *SalesMetrics) SaleCreated(ctx context.Context, total decimal.Decimal) {
	m.record(ctx, "create", &total)
}

// SaleUpdated records one committed update and the resulting total.
func (m *SalesMetrics) SaleUpdated(ctx context.Context, total decimal.Decimal) {
	m.record(ctx, "update", &total)
}

// SaleDeleted records one committed delete.
func (m *SalesMetrics) SaleDeleted(ctx context.Context) {
	m.record(ctx, "delete", nil)
}

func (m *SalesMetrics) record(ctx context.Context, op string, total *decimal.Decimal) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operation", op))
	m.writes.Add(ctx, 1, attrs)
	if total != nil {
		m.totals.Record(ctx, total.InexactFloat64(), attrs)
	}
}
