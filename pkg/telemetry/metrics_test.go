package telemetry

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestSalesMetrics_NilIsNoop(t *testing.T) {
	var m *SalesMetrics
	m.SaleCreated(context.Background(), decimal.NewFromInt(1))
	m.SaleUpdated(context.Background(), decimal.NewFromInt(1))
	m.SaleDeleted(context.Background())
}

func TestSalesMetrics_Records(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck

	m, err := NewSalesMetrics(mp)
	if err != nil {
		t.Fatalf("NewSalesMetrics: %v", err)
	}
	ctx := context.Background()
	m.SaleCreated(ctx, decimal.RequireFromString("35.00"))
	m.SaleUpdated(ctx, decimal.RequireFromString("10.00"))
	m.SaleDeleted(ctx)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	var writes int64
	var histCount uint64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			switch data := md.Data.(type) {
			case metricdata.Sum[int64]:
				if md.Name == "sales.writes" {
					for _, dp := range data.DataPoints {
						writes += dp.Value
					}
				}
			case metricdata.Histogram[float64]:
				if md.Name == "sales.total" {
					for _, dp := range data.DataPoints {
						histCount += dp.Count
					}
				}
			}
		}
	}
	if writes != 3 {
		t.Errorf("expected 3 writes, got %d", writes)
	}
	if histCount != 2 {
		t.Errorf("expected 2 recorded totals, got %d", histCount)
	}
}
