// Package services contains stateless domain services for the sales bounded
// context: pricing of line items, report aggregation and dashboard windows.
// They operate on domain types only.
package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
)

// ValidateLineRequests checks the caller-supplied item list before any
// storage access.
//
// Business rules:
//   - At least one item
//   - Every quantity is at least 1 and at most MaxQuantity
func ValidateLineRequests(reqs []models.LineRequest) error {
	if len(reqs) == 0 {
		return domain.ErrEmptySaleItems
	}
	for i, r := range reqs {
		if r.Quantity < 1 || r.Quantity > models.MaxQuantity {
			return fmt.Errorf("item %d (product %d): %w", i, r.ProductID, domain.ErrInvalidQuantity)
		}
	}
	return nil
}

// ValidateTotal rejects a negative total override. nil means no override.
func ValidateTotal(total *decimal.Decimal) error {
	if total != nil && total.IsNegative() {
		return domain.ErrNegativeTotal
	}
	return nil
}

// PriceLines looks up every requested product through products and prices
// the line at the product's current price. The first missing product aborts
// with ErrProductNotFound; callers run this inside the write transaction so
// nothing is persisted in that case.
func PriceLines(ctx context.Context, products repositories.ProductRepository, reqs []models.LineRequest) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0, len(reqs))
	for _, r := range reqs {
		product, err := products.GetByID(ctx, r.ProductID)
		if err != nil {
			return nil, fmt.Errorf("price product %d: %w", r.ProductID, err)
		}
		items = append(items, models.NewLineItem(*product, r.Quantity))
	}
	return items, nil
}

// SumLineTotals returns Σ item.Total.
func SumLineTotals(items []models.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return models.RoundMoney(sum)
}

// ResolveTotal returns override when supplied, else the sum of the line totals.
func ResolveTotal(items []models.LineItem, override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return models.RoundMoney(*override)
	}
	return SumLineTotals(items)
}
