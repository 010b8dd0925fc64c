package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/sales/domain/models"
)

type reportRepo struct {
	db access
}

// headersBetween returns headers with start <= date <= end, ascending by date then id.
func headersBetween(st *state, start, end time.Time) []models.Sale {
	var out []models.Sale
	for _, header := range st.sales {
		if header.Date.Before(start) || header.Date.After(end) {
			continue
		}
		out = append(out, header)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *reportRepo) SalesBetween(_ context.Context, start, end time.Time) ([]*models.Sale, error) {
	var out []*models.Sale
	err := r.db.read(func(st *state) error {
		for _, header := range headersBetween(st, start, end) {
			out = append(out, hydrate(st, header))
		}
		return nil
	})
	return out, err
}

// productName prefers the current catalog name and falls back to the snapshot.
func productName(st *state, item models.LineItem) string {
	if p, ok := st.products[item.ProductID]; ok {
		return p.Name
	}
	return item.ProductName
}

func (r *reportRepo) TopProducts(_ context.Context, limit int) ([]models.ProductSales, error) {
	var out []models.ProductSales
	err := r.db.read(func(st *state) error {
		totals := map[int64]*models.ProductSales{}
		for _, item := range st.items {
			row, ok := totals[item.ProductID]
			if !ok {
				row = &models.ProductSales{ProductID: item.ProductID, ProductName: productName(st, item)}
				totals[item.ProductID] = row
			}
			row.TotalSold += int64(item.Quantity)
		}
		for _, row := range totals {
			out = append(out, *row)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].TotalSold != out[j].TotalSold {
				return out[i].TotalSold > out[j].TotalSold
			}
			return out[i].ProductID < out[j].ProductID
		})
		if len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

func (r *reportRepo) TopClients(_ context.Context, limit int) ([]models.ClientSpending, error) {
	var out []models.ClientSpending
	err := r.db.read(func(st *state) error {
		totals := map[int64]*models.ClientSpending{}
		for _, sale := range st.sales {
			row, ok := totals[sale.ClientID]
			if !ok {
				row = &models.ClientSpending{
					ClientID:   sale.ClientID,
					ClientName: st.clients[sale.ClientID].FullName(),
					TotalSpent: decimal.Zero,
				}
				totals[sale.ClientID] = row
			}
			row.TotalSpent = row.TotalSpent.Add(sale.Total)
		}
		for _, row := range totals {
			out = append(out, *row)
		}
		sort.Slice(out, func(i, j int) bool {
			if c := out[i].TotalSpent.Cmp(out[j].TotalSpent); c != 0 {
				return c > 0
			}
			return out[i].ClientID < out[j].ClientID
		})
		if len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

func (r *reportRepo) QuantityLines(_ context.Context, start, end time.Time) ([]models.QuantityLine, error) {
	var out []models.QuantityLine
	err := r.db.read(func(st *state) error {
		for _, header := range headersBetween(st, start, end) {
			for _, item := range itemsOf(st, header.ID) {
				out = append(out, models.QuantityLine{
					SaleDate:    header.Date,
					SaleID:      header.ID,
					ProductID:   item.ProductID,
					ProductName: productName(st, item),
					Quantity:    int64(item.Quantity),
				})
			}
		}
		return nil
	})
	return out, err
}

func (r *reportRepo) SumTotals(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.db.read(func(st *state) error {
		for _, sale := range st.sales {
			if !sale.Date.Before(from) && sale.Date.Before(to) {
				sum = sum.Add(sale.Total)
			}
		}
		return nil
	})
	return sum, err
}
