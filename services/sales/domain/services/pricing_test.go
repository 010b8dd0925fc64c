package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

type stubProducts map[int64]models.Product

func (s stubProducts) GetByID(_ context.Context, id int64) (*models.Product, error) {
	p, ok := s[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (s stubProducts) Count(context.Context) (int64, error) { return int64(len(s)), nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidateLineRequests(t *testing.T) {
	tests := []struct {
		name    string
		input   []models.LineRequest
		wantErr error
	}{
		{"single item", []models.LineRequest{{ProductID: 1, Quantity: 1}}, nil},
		{"several items", []models.LineRequest{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}}, nil},
		{"nil list", nil, domain.ErrEmptySaleItems},
		{"empty list", []models.LineRequest{}, domain.ErrEmptySaleItems},
		{"zero quantity", []models.LineRequest{{ProductID: 1, Quantity: 0}}, domain.ErrInvalidQuantity},
		{"largest storable quantity", []models.LineRequest{{ProductID: 1, Quantity: models.MaxQuantity}}, nil},
		{"quantity past int32", []models.LineRequest{{ProductID: 1, Quantity: models.MaxQuantity + 1}}, domain.ErrInvalidQuantity},
		{"quantity wrapping to one", []models.LineRequest{{ProductID: 1, Quantity: 1<<32 + 1}}, domain.ErrInvalidQuantity},
		{"negative quantity", []models.LineRequest{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: -4}}, domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLineRequests(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("expected InvalidArgument kind, got %v", err)
			}
		})
	}
}

func TestValidateTotal(t *testing.T) {
	neg := dec("-0.01")
	zero := decimal.Zero
	pos := dec("12.50")

	if err := ValidateTotal(nil); err != nil {
		t.Fatalf("nil override must be valid: %v", err)
	}
	if err := ValidateTotal(&zero); err != nil {
		t.Fatalf("zero override must be valid: %v", err)
	}
	if err := ValidateTotal(&pos); err != nil {
		t.Fatalf("positive override must be valid: %v", err)
	}
	if err := ValidateTotal(&neg); !errors.Is(err, domain.ErrNegativeTotal) {
		t.Fatalf("expected ErrNegativeTotal, got %v", err)
	}
}

func TestPriceLines(t *testing.T) {
	products := stubProducts{
		1: {ID: 1, Name: "A", Price: dec("10.00")},
		2: {ID: 2, Name: "B", Price: dec("5.00")},
	}

	t.Run("prices every line at the current price", func(t *testing.T) {
		items, err := PriceLines(context.Background(), products, []models.LineRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if !items[0].Total.Equal(dec("20")) || !items[1].Total.Equal(dec("15")) {
			t.Fatalf("unexpected line totals %s, %s", items[0].Total, items[1].Total)
		}
		if items[1].ProductName != "B" {
			t.Fatalf("expected name snapshot B, got %q", items[1].ProductName)
		}
		if got := SumLineTotals(items); !got.Equal(dec("35")) {
			t.Fatalf("expected sum 35, got %s", got)
		}
	})

	t.Run("missing product aborts", func(t *testing.T) {
		_, err := PriceLines(context.Background(), products, []models.LineRequest{
			{ProductID: 1, Quantity: 1},
			{ProductID: 99, Quantity: 1},
		})
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected NotFound kind, got %v", err)
		}
	})
}

func TestResolveTotal(t *testing.T) {
	items := []models.LineItem{{Total: dec("20")}, {Total: dec("15")}}

	if got := ResolveTotal(items, nil); !got.Equal(dec("35")) {
		t.Fatalf("expected computed 35, got %s", got)
	}
	override := dec("30.005")
	if got := ResolveTotal(items, &override); got.String() != "30.01" {
		t.Fatalf("expected rounded override 30.01, got %s", got)
	}
	if got := ResolveTotal(nil, nil); !got.IsZero() {
		t.Fatalf("expected zero, got %s", got)
	}
}
