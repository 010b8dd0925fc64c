package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain "github.com/ghuser/backoffice/services/sales/domain"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

func TestClientService_FindOrCreateDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	before, _ := f.store.Clients().Count(ctx)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := f.clients.FindOrCreateDefault(ctx)
			if err != nil {
				t.Errorf("FindOrCreateDefault: %v", err)
				return
			}
			if c.ID != models.DefaultClientID || c.Email != "walkin@example.com" {
				t.Errorf("unexpected default client %+v", c)
			}
		}()
	}
	wg.Wait()

	// a sale without a client must reuse the same record
	f.mustCreate(t, CreateSaleInput{Items: []models.LineRequest{line(f.productA, 1)}})

	after, _ := f.store.Clients().Count(ctx)
	if after-before != 1 {
		t.Fatalf("expected exactly one default client record, got %d new", after-before)
	}
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	if _, err := f.clients.FindOrCreateDefault(ctx); err != nil {
		t.Fatalf("FindOrCreateDefault: %v", err)
	}

	if err := f.clients.Delete(ctx, models.DefaultClientID); !errors.Is(err, domain.ErrDefaultClientProtected) {
		t.Fatalf("expected ErrDefaultClientProtected, got %v", err)
	}
	if _, err := f.store.Clients().GetByID(ctx, models.DefaultClientID); err != nil {
		t.Fatalf("default client removed: %v", err)
	}

	if err := f.clients.Delete(ctx, 999); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}

	if err := f.clients.Delete(ctx, f.client.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.store.Clients().GetByID(ctx, f.client.ID); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("client still present: %v", err)
	}
}
