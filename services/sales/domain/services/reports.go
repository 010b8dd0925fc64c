package services

import (
	"fmt"
	"sort"
	"time"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

// ValidateLimit rejects ranking limits outside [1, MaxReportLimit].
func ValidateLimit(limit int) error {
	if limit < 1 || limit > models.MaxReportLimit {
		return fmt.Errorf("limit %d: %w", limit, domain.ErrInvalidLimit)
	}
	return nil
}

// ExcludeDefaultClient drops the reserved walk-in client from a ranked
// list and truncates the rest to limit, keeping rank order. The input is
// expected to hold limit+1 candidates so that removing the default client
// still leaves limit rows when enough clients exist.
func ExcludeDefaultClient(rows []models.ClientSpending, defaultClientID int64, limit int) []models.ClientSpending {
	out := make([]models.ClientSpending, 0, min(len(rows), limit))
	for _, row := range rows {
		if row.ClientID == defaultClientID {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, row)
	}
	return out
}

// BucketByDay partitions lines into calendar days in loc and returns one
// bucket per day that has at least one line, ascending by date.
//
// Within a day the top product is the one with the highest summed quantity;
// on a tie the product encountered first in lines wins. lines must be
// ordered by sale date, sale id, item id for that rule to be deterministic.
func BucketByDay(lines []models.QuantityLine, loc *time.Location) []models.DailyProductSales {
	if loc == nil {
		loc = time.UTC
	}

	type productTally struct {
		name     string
		quantity int64
		order    int
	}
	type dayTally struct {
		date     time.Time
		total    int64
		products map[int64]*productTally
		seen     int
	}

	days := make(map[time.Time]*dayTally)
	for _, line := range lines {
		day := StartOfDay(line.SaleDate, loc)
		d, ok := days[day]
		if !ok {
			d = &dayTally{date: day, products: make(map[int64]*productTally)}
			days[day] = d
		}
		d.total += line.Quantity

		p, ok := d.products[line.ProductID]
		if !ok {
			p = &productTally{name: line.ProductName, order: d.seen}
			d.seen++
			d.products[line.ProductID] = p
		}
		p.quantity += line.Quantity
	}

	out := make([]models.DailyProductSales, 0, len(days))
	for _, d := range days {
		var (
			top     models.TopProduct
			topSeen = -1
		)
		for id, p := range d.products {
			better := p.quantity > top.Quantity ||
				(p.quantity == top.Quantity && (topSeen < 0 || p.order < topSeen))
			if better {
				top = models.TopProduct{ProductID: id, ProductName: p.name, Quantity: p.quantity}
				topSeen = p.order
			}
		}
		out = append(out, models.DailyProductSales{
			Date:          d.date,
			TotalQuantity: d.total,
			TopProduct:    top,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
