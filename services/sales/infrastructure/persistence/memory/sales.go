package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
)

type saleRepo struct {
	db access
}

func (r *saleRepo) Create(_ context.Context, sale *models.Sale) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.clients[sale.ClientID]; !ok {
			return fmt.Errorf("create sale: %w", domain.ErrClientNotFound)
		}
		for _, item := range sale.Items {
			if _, ok := st.products[item.ProductID]; !ok {
				return fmt.Errorf("create sale: %w", domain.ErrProductNotFound)
			}
		}

		sale.ID = st.nextSaleID
		st.nextSaleID++
		header := *sale
		header.Items = nil
		header.Client = models.Client{}
		st.sales[sale.ID] = header

		insertItems(st, sale.ID, sale.Items)
		return nil
	})
}

func (r *saleRepo) GetByID(_ context.Context, id int64) (*models.Sale, error) {
	var out *models.Sale
	err := r.db.read(func(st *state) error {
		header, ok := st.sales[id]
		if !ok {
			return domain.ErrSaleNotFound
		}
		out = hydrate(st, header)
		return nil
	})
	return out, err
}

// GetForUpdate needs no lock here: transactions are already serialised.
func (r *saleRepo) GetForUpdate(_ context.Context, id int64) (*models.Sale, error) {
	var out *models.Sale
	err := r.db.read(func(st *state) error {
		header, ok := st.sales[id]
		if !ok {
			return domain.ErrSaleNotFound
		}
		out = &header
		return nil
	})
	return out, err
}

func (r *saleRepo) ReplaceItems(_ context.Context, saleID int64, items []models.LineItem) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.sales[saleID]; !ok {
			return domain.ErrSaleNotFound
		}
		for _, item := range items {
			if _, ok := st.products[item.ProductID]; !ok {
				return fmt.Errorf("replace items: %w", domain.ErrProductNotFound)
			}
		}
		deleteItems(st, saleID)
		insertItems(st, saleID, items)
		return nil
	})
}

func (r *saleRepo) UpdateHeader(_ context.Context, sale *models.Sale) error {
	return r.db.write(func(st *state) error {
		header, ok := st.sales[sale.ID]
		if !ok {
			return domain.ErrSaleNotFound
		}
		if _, ok := st.clients[sale.ClientID]; !ok {
			return fmt.Errorf("update sale: %w", domain.ErrClientNotFound)
		}
		header.ClientID = sale.ClientID
		header.Total = sale.Total
		st.sales[sale.ID] = header
		return nil
	})
}

func (r *saleRepo) Delete(_ context.Context, id int64) (bool, error) {
	var existed bool
	err := r.db.write(func(st *state) error {
		deleteItems(st, id)
		_, existed = st.sales[id]
		delete(st.sales, id)
		return nil
	})
	return existed, err
}

func (r *saleRepo) List(_ context.Context, opts repositories.QueryOpts) ([]*models.Sale, int, error) {
	var (
		page  []*models.Sale
		total int
	)
	err := r.db.read(func(st *state) error {
		q := strings.ToLower(strings.TrimSpace(opts.Search))
		matched := make([]models.Sale, 0, len(st.sales))
		for _, header := range st.sales {
			if q != "" && !matchesSearch(st, header, q) {
				continue
			}
			matched = append(matched, header)
		}
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].Date.Equal(matched[j].Date) {
				return matched[i].Date.After(matched[j].Date)
			}
			return matched[i].ID > matched[j].ID
		})

		total = len(matched)
		start := min(max(opts.Offset, 0), total)
		end := total
		if opts.Limit > 0 {
			end = min(start+opts.Limit, total)
		}
		for _, header := range matched[start:end] {
			page = append(page, hydrate(st, header))
		}
		return nil
	})
	return page, total, err
}

func matchesSearch(st *state, header models.Sale, q string) bool {
	if strings.Contains(strconv.FormatInt(header.ID, 10), q) {
		return true
	}
	c := st.clients[header.ClientID]
	return strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.LastName), q)
}

func insertItems(st *state, saleID int64, items []models.LineItem) {
	for i := range items {
		items[i].ID = st.nextItemID
		items[i].SaleID = saleID
		st.nextItemID++

		row := items[i]
		row.Product = models.Product{}
		st.items[row.ID] = row
	}
}

func deleteItems(st *state, saleID int64) {
	for id, item := range st.items {
		if item.SaleID == saleID {
			delete(st.items, id)
		}
	}
}

// itemsOf returns the sale's items ascending by id, without products.
func itemsOf(st *state, saleID int64) []models.LineItem {
	var items []models.LineItem
	for _, item := range st.items {
		if item.SaleID == saleID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func hydrate(st *state, header models.Sale) *models.Sale {
	sale := header
	sale.Client = st.clients[header.ClientID]
	sale.Items = itemsOf(st, header.ID)
	for i := range sale.Items {
		sale.Items[i].Product = st.products[sale.Items[i].ProductID]
	}
	return &sale
}
