package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/logger"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/memory"
)

// fixture wires the services over a fresh in-memory store seeded with
// product A (10.00), product B (5.00) and one real client.
type fixture struct {
	store    *memory.Store
	sales    *SaleService
	reports  *ReportService
	clients  *ClientService
	productA models.Product
	productB models.Product
	client   models.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New(&config.Config{LogLevel: "error"})
	store := memory.New()
	clients := NewClientService(store, models.Client{Name: "Walk-in", LastName: "Customer", Email: "walkin@example.com"}, log)

	return &fixture{
		store:    store,
		clients:  clients,
		sales:    NewSaleService(store, clients, nil, log),
		reports:  NewReportService(store, nil, time.UTC, log),
		productA: store.AddProduct(models.Product{Name: "A", Price: dec("10.00")}),
		productB: store.AddProduct(models.Product{Name: "B", Price: dec("5.00")}),
		client:   store.AddClient(models.Client{Name: "Ada", LastName: "Lovelace", Email: "ada@example.com"}),
	}
}

// at pins the sale clock so created sales get a known date.
func (f *fixture) at(ts time.Time) {
	f.sales.now = func() time.Time { return ts }
}

func (f *fixture) mustCreate(t *testing.T, in CreateSaleInput) *models.Sale {
	t.Helper()
	sale, err := f.sales.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return sale
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decimalInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

func ptr[T any](v T) *T { return &v }

func line(p models.Product, qty int) models.LineRequest {
	return models.LineRequest{ProductID: p.ID, Quantity: qty}
}
