package memory

import (
	"context"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

type clientRepo struct {
	db access
}

func (r *clientRepo) GetByID(_ context.Context, id int64) (*models.Client, error) {
	var out *models.Client
	err := r.db.read(func(st *state) error {
		c, ok := st.clients[id]
		if !ok {
			return domain.ErrClientNotFound
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *clientRepo) InsertIfAbsent(_ context.Context, client models.Client) (bool, error) {
	var inserted bool
	err := r.db.write(func(st *state) error {
		if _, ok := st.clients[client.ID]; ok {
			return nil
		}
		st.clients[client.ID] = client
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *clientRepo) Delete(_ context.Context, id int64) (bool, error) {
	var existed bool
	err := r.db.write(func(st *state) error {
		if _, existed = st.clients[id]; !existed {
			return nil
		}
		for _, sale := range st.sales {
			if sale.ClientID == id {
				return domain.ErrClientInUse
			}
		}
		delete(st.clients, id)
		return nil
	})
	return existed, err
}

func (r *clientRepo) Count(context.Context) (int64, error) {
	var n int64
	err := r.db.read(func(st *state) error {
		n = int64(len(st.clients))
		return nil
	})
	return n, err
}

type productRepo struct {
	db access
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*models.Product, error) {
	var out *models.Product
	err := r.db.read(func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (r *productRepo) Count(context.Context) (int64, error) {
	var n int64
	err := r.db.read(func(st *state) error {
		n = int64(len(st.products))
		return nil
	})
	return n, err
}
