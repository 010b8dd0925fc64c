package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/logger"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/memory"
)

type testAPI struct {
	router   http.Handler
	store    *memory.Store
	productA models.Product
	productB models.Product
	client   models.Client
}

func newTestAPI(t *testing.T, sessionStore sessions.Store) *testAPI {
	t.Helper()
	cfg := &config.Config{
		LogLevel:              "error",
		DefaultClientName:     "Walk-in Customer",
		DefaultClientLastName: "Default",
		DefaultClientEmail:    "default@example.com",
	}
	a := &app.Application{Config: cfg, Logger: logger.New(cfg), SessionStore: sessionStore}
	store := memory.New()
	svcs := appsvcs.NewWithStore(store, nil, time.UTC, a)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) { Mount(r, a, svcs) })

	return &testAPI{
		router:   r,
		store:    store,
		productA: store.AddProduct(models.Product{Name: "A", Price: decimal.RequireFromString("10.00")}),
		productB: store.AddProduct(models.Product{Name: "B", Price: decimal.RequireFromString("5.00")}),
		client:   store.AddClient(models.Client{Name: "Ada", LastName: "Lovelace"}),
	}
}

func (api *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	api.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return v
}

type saleJSON struct {
	ID     int64  `json:"id"`
	Total  string `json:"total"`
	Client struct {
		ID int64 `json:"id"`
	} `json:"client"`
	Items []struct {
		ProductID int64  `json:"productId"`
		Quantity  int    `json:"quantity"`
		UnitPrice string `json:"unitPrice"`
		Total     string `json:"total"`
	} `json:"items"`
}

func items(lines ...[2]int64) []map[string]int64 {
	out := make([]map[string]int64, len(lines))
	for i, l := range lines {
		out[i] = map[string]int64{"productId": l[0], "quantity": l[1]}
	}
	return out
}

func (api *testAPI) createSale(t *testing.T, body map[string]any) saleJSON {
	t.Helper()
	rr := api.do(t, http.MethodPost, "/api/sales", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create sale: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	sale := decode[saleJSON](t, rr)
	if want := fmt.Sprintf("/api/sales/%d", sale.ID); rr.Header().Get("Location") != want {
		t.Fatalf("Location: got %q, want %q", rr.Header().Get("Location"), want)
	}
	return sale
}

func TestSalesAPI_Create(t *testing.T) {
	api := newTestAPI(t, nil)

	sale := api.createSale(t, map[string]any{
		"items": items([2]int64{api.productA.ID, 2}, [2]int64{api.productB.ID, 3}),
	})
	if sale.Total != "35.00" || sale.Client.ID != models.DefaultClientID || len(sale.Items) != 2 {
		t.Fatalf("unexpected sale %+v", sale)
	}
	if sale.Items[0].UnitPrice != "10.00" || sale.Items[0].Total != "20.00" {
		t.Fatalf("unexpected first item %+v", sale.Items[0])
	}

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"no items", map[string]any{"items": []any{}}, http.StatusUnprocessableEntity},
		{"zero quantity", map[string]any{"items": items([2]int64{api.productA.ID, 0})}, http.StatusUnprocessableEntity},
		{"quantity beyond storage", map[string]any{"items": items([2]int64{api.productA.ID, 1<<31})}, http.StatusUnprocessableEntity},
		{"negative total", map[string]any{"items": items([2]int64{api.productA.ID, 1}), "total": "-1.00"}, http.StatusUnprocessableEntity},
		{"unknown product", map[string]any{"items": items([2]int64{999, 1})}, http.StatusNotFound},
		{"unknown client", map[string]any{"clientId": 999, "items": items([2]int64{api.productA.ID, 1})}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := api.do(t, http.MethodPost, "/api/sales", tt.body)
			if rr.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rr.Code, rr.Body.String())
			}
		})
	}

	if api.store.SaleCount() != 1 {
		t.Fatalf("failed requests persisted sales: %d", api.store.SaleCount())
	}

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		api.router.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr.Code)
		}
	})
}

func TestSalesAPI_GetUpdateDelete(t *testing.T) {
	api := newTestAPI(t, nil)
	sale := api.createSale(t, map[string]any{
		"clientId": api.client.ID,
		"items":    items([2]int64{api.productA.ID, 1}),
	})
	path := fmt.Sprintf("/api/sales/%d", sale.ID)

	if rr := api.do(t, http.MethodGet, path, nil); rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rr.Code)
	}
	if rr := api.do(t, http.MethodGet, "/api/sales/abc", nil); rr.Code != http.StatusBadRequest {
		t.Fatalf("get bad id: expected 400, got %d", rr.Code)
	}
	if rr := api.do(t, http.MethodGet, "/api/sales/999", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("get missing: expected 404, got %d", rr.Code)
	}

	rr := api.do(t, http.MethodPut, path, map[string]any{"items": items([2]int64{api.productB.ID, 4})})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	updated := decode[saleJSON](t, rr)
	if updated.Total != "20.00" || len(updated.Items) != 1 || updated.Items[0].ProductID != api.productB.ID {
		t.Fatalf("unexpected updated sale %+v", updated)
	}

	rr = api.do(t, http.MethodPut, path, map[string]any{"total": "99.99"})
	if got := decode[saleJSON](t, rr); rr.Code != http.StatusOK || got.Total != "99.99" || len(got.Items) != 1 {
		t.Fatalf("total-only update: %d %+v", rr.Code, got)
	}

	if rr := api.do(t, http.MethodPut, path, map[string]any{"items": []any{}}); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty item update: expected 422, got %d", rr.Code)
	}
	if rr := api.do(t, http.MethodPut, "/api/sales/999", map[string]any{"total": "1"}); rr.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404, got %d", rr.Code)
	}

	if rr := api.do(t, http.MethodDelete, path, nil); rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rr.Code)
	}
	if rr := api.do(t, http.MethodDelete, path, nil); rr.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rr.Code)
	}
	if api.store.ItemCount() != 0 {
		t.Fatalf("delete left %d items", api.store.ItemCount())
	}
}

func TestSalesAPI_List(t *testing.T) {
	api := newTestAPI(t, nil)
	for range 3 {
		api.createSale(t, map[string]any{"items": items([2]int64{api.productA.ID, 1})})
	}
	api.createSale(t, map[string]any{"clientId": api.client.ID, "items": items([2]int64{api.productA.ID, 1})})

	type page struct {
		Data       []saleJSON `json:"data"`
		Total      int        `json:"total"`
		Page       int        `json:"page"`
		TotalPages int        `json:"totalPages"`
	}

	rr := api.do(t, http.MethodGet, "/api/sales?limit=3&page=2", nil)
	got := decode[page](t, rr)
	if rr.Code != http.StatusOK || got.Total != 4 || got.TotalPages != 2 || got.Page != 2 || len(got.Data) != 1 {
		t.Fatalf("unexpected page: %d %+v", rr.Code, got)
	}

	got = decode[page](t, api.do(t, http.MethodGet, "/api/sales?q=LOVE", nil))
	if got.Total != 1 || got.Data[0].Client.ID != api.client.ID {
		t.Fatalf("search failed: %+v", got)
	}

	if rr := api.do(t, http.MethodGet, "/api/sales?limit=0", nil); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("limit=0: expected 422, got %d", rr.Code)
	}
}

func TestReportsAPI(t *testing.T) {
	api := newTestAPI(t, nil)
	api.createSale(t, map[string]any{"items": items([2]int64{api.productA.ID, 20})})
	api.createSale(t, map[string]any{"clientId": api.client.ID, "items": items([2]int64{api.productB.ID, 3})})
	today := time.Now().UTC().Format(time.DateOnly)

	t.Run("top products", func(t *testing.T) {
		rr := api.do(t, http.MethodGet, "/api/sales/reports/top-products?limit=1", nil)
		rows := decode[[]map[string]any](t, rr)
		if rr.Code != http.StatusOK || len(rows) != 1 || rows[0]["productName"] != "A" {
			t.Fatalf("unexpected top products: %d %+v", rr.Code, rows)
		}
	})

	t.Run("top clients never list the walk-in client", func(t *testing.T) {
		rr := api.do(t, http.MethodGet, "/api/sales/reports/top-clients", nil)
		rows := decode[[]map[string]any](t, rr)
		if rr.Code != http.StatusOK || len(rows) != 1 || rows[0]["clientName"] != "Ada Lovelace" || rows[0]["totalSpent"] != "15.00" {
			t.Fatalf("unexpected top clients: %d %+v", rr.Code, rows)
		}
	})

	t.Run("limits", func(t *testing.T) {
		for _, path := range []string{
			"/api/sales/reports/top-products?limit=0",
			"/api/sales/reports/top-clients?limit=-3",
			"/api/sales/reports/top-clients?limit=many",
		} {
			if rr := api.do(t, http.MethodGet, path, nil); rr.Code != http.StatusUnprocessableEntity {
				t.Errorf("%s: expected 422, got %d", path, rr.Code)
			}
		}
		rr := api.do(t, http.MethodGet, "/api/sales/reports/top-clients?limit=9223372036854775807", nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("huge limit must be capped, got %d", rr.Code)
		}
	})

	t.Run("by date", func(t *testing.T) {
		rr := api.do(t, http.MethodGet, "/api/sales/reports/by-date?startDate="+today+"&endDate="+today, nil)
		rows := decode[[]saleJSON](t, rr)
		if rr.Code != http.StatusOK || len(rows) != 2 || rows[0].ID > rows[1].ID {
			t.Fatalf("expected both sales oldest first: %d %+v", rr.Code, rows)
		}
	})

	t.Run("product sales by date", func(t *testing.T) {
		rr := api.do(t, http.MethodGet, "/api/sales/reports/product-sales-by-date?startDate="+today+"&endDate="+today, nil)
		rows := decode[[]map[string]any](t, rr)
		if rr.Code != http.StatusOK || len(rows) != 1 || rows[0]["date"] != today || rows[0]["totalQuantity"] != float64(23) {
			t.Fatalf("unexpected buckets: %d %+v", rr.Code, rows)
		}
	})

	t.Run("bad ranges", func(t *testing.T) {
		tests := []struct {
			query string
			want  int
		}{
			{"startDate=2025-02-01&endDate=2025-01-01", http.StatusUnprocessableEntity},
			{"endDate=2025-01-01", http.StatusBadRequest},
			{"startDate=yesterday&endDate=2025-01-01", http.StatusBadRequest},
		}
		for _, tt := range tests {
			if rr := api.do(t, http.MethodGet, "/api/sales/reports/by-date?"+tt.query, nil); rr.Code != tt.want {
				t.Errorf("%s: expected %d, got %d", tt.query, tt.want, rr.Code)
			}
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		rr := api.do(t, http.MethodGet, "/api/sales/reports/dashboard", nil)
		stats := decode[map[string]any](t, rr)
		if rr.Code != http.StatusOK || stats["todaySales"] != "215.00" || stats["totalClients"] != float64(2) {
			t.Fatalf("unexpected dashboard: %d %+v", rr.Code, stats)
		}
	})
}

func TestClientsAPI(t *testing.T) {
	api := newTestAPI(t, nil)

	rr := api.do(t, http.MethodGet, "/api/clients/default", nil)
	client := decode[map[string]any](t, rr)
	if rr.Code != http.StatusOK || client["id"] != float64(models.DefaultClientID) || client["name"] != "Walk-in Customer" {
		t.Fatalf("unexpected default client: %d %+v", rr.Code, client)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/api/clients/1", http.StatusConflict},
		{"/api/clients/999", http.StatusNotFound},
		{"/api/clients/zero", http.StatusBadRequest},
		{fmt.Sprintf("/api/clients/%d", api.client.ID), http.StatusNoContent},
	}
	for _, tt := range tests {
		if rr := api.do(t, http.MethodDelete, tt.path, nil); rr.Code != tt.want {
			t.Errorf("DELETE %s: expected %d, got %d", tt.path, tt.want, rr.Code)
		}
	}
}

func TestSalesAPI_SessionGuard(t *testing.T) {
	store := sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
	api := newTestAPI(t, store)

	if rr := api.do(t, http.MethodPost, "/api/sales", map[string]any{"items": items([2]int64{api.productA.ID, 1})}); rr.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated write: expected 401, got %d", rr.Code)
	}
	if rr := api.do(t, http.MethodGet, "/api/sales/reports/dashboard", nil); rr.Code != http.StatusOK {
		t.Fatalf("reads stay open: expected 200, got %d", rr.Code)
	}
}
