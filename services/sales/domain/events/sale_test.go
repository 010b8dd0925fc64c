package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/services/sales/domain/events"
)

func TestSaleChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.NewSaleChangedEvent(10, 1, decimal.RequireFromString("35.00"), time.Now())

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "sale_id", "client_id", "total", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if _, ok := raw["operator_id"]; ok {
		t.Errorf("operator_id must be omitted when unset: %s", data)
	}
	if raw["total"] != "35" {
		t.Errorf("expected total encoded as decimal string, got %v", raw["total"])
	}
}

func TestNewSaleChangedEvent(t *testing.T) {
	at := time.Date(2025, 1, 15, 12, 0, 0, 0, time.FixedZone("X", 3600))
	evt := events.NewSaleChangedEvent(3, 4, decimal.NewFromInt(5), at)

	if evt.EventID == uuid.Nil {
		t.Fatal("expected non-nil event id")
	}
	if evt.Version != 1 {
		t.Errorf("expected version 1, got %d", evt.Version)
	}
	if evt.OccurredAt.Location() != time.UTC || !evt.OccurredAt.Equal(at) {
		t.Errorf("expected %v in UTC, got %v", at, evt.OccurredAt)
	}
	other := events.NewSaleChangedEvent(3, 4, decimal.NewFromInt(5), at)
	if other.EventID == evt.EventID {
		t.Error("expected unique event ids")
	}
}

func TestSaleTopics(t *testing.T) {
	want := map[string]bool{"sale.created": true, "sale.updated": true, "sale.deleted": true}
	if len(events.SaleTopics) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(events.SaleTopics))
	}
	for _, topic := range events.SaleTopics {
		if !want[topic] {
			t.Errorf("unexpected topic %q", topic)
		}
	}
}
